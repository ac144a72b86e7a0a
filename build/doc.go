// Package build scaffolds the per-day directories of an Advent of Code
// project.
//
// Each puzzle day lives in its own "day_N" directory holding the puzzle
// input plus a solution file and its test, both rendered from embedded
// templates. BuildDay materialises one day and BuildAll sweeps the whole
// calendar. Files that already exist are never overwritten, so the
// scaffolder is safe to rerun over a project in progress.
//
// Errors
//
//	ErrTemplate - an embedded template failed to render.
package build
