// Package class contains the error classifications for the fluent library.
// The classes are composed of the major, minor and index subclassifications
// packed into a single uint32 value.
package class
