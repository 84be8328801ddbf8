// Package log contains the leveled logging wrapper used by the fluent library.
// By default no logger is set - all the log functions are then a no-op.
// Set the logger with the SetLogger or Default functions.
package log
