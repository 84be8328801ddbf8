// Package fluent implements the fluent relation mapping for the model structures.
// It consists of the following packages:
// - fluent - the root package that creates the configured model maps.
// - mapping - contains the information about the mapped models, their fields,
//	the discovered fluent relation fields and the per instance relation tables.
// - config - contains the configurations for all packages.
// - annotation - contains the 'fluent' struct tag definitions.
// - namer - contains the naming convention functions.
// - errors - used as a default error package for the fluent packages.
// - errors/class - contains errors classification system for the fluent packages.
// - log - is the logging interface for the fluent based applications.
package fluent
