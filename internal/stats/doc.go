// Package stats derives daily productivity metrics from a sector collection.
//
// Every function here is pure: results depend only on the arguments, and
// nothing reads the wall clock or touches storage.
package stats
