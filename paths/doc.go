// Package paths centralizes the file paths, package names and URLs derived
// from a puzzle project's year and base directory.
//
// A yearly project lives at <BaseDir>/AdventCode<Year> and holds one
// directory per day (day_1 … day_25), each with the puzzle input, the
// solution source and its test. All other packages derive locations through
// a Manager instead of assembling paths themselves.
package paths
