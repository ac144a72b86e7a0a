// Package adventcodetools is a personal toolkit for solving the yearly
// Advent of Code puzzle calendars.
//
// 🎄 What is AdventCodeTools?
//
//	A small collection of packages covering the chores that repeat every
//	December, so each day's effort goes into the puzzle itself:
//		• Search engines: best-first (A*) and exhaustive reachability sweeps
//		• Grids: weighted 2D boards wired into both engines
//		• Scaffolding: per-day directories rendered from templates
//		• Website client: puzzle names and personal inputs
//		• README calendar: progress table with stars, solutions and timings
//		• Banner decoding: 4x6 pixel letters back into text
//		• Terminal mosaics: colored plots of puzzle state
//
// Everything is organized under focused subpackages:
//
//	astar/      — best-first search over caller-defined nodes
//	fullsearch/ — exhaustive state-space sweeps
//	grid/       — weighted 2D boards for both engines
//	paths/      — project layout and website URLs
//	build/      — per-day scaffolding from embedded templates
//	scrape/     — puzzle names and inputs from the website
//	calendar/   — README progress table
//	solve/      — solver registry, timing and reports
//	pixel/      — pixel-banner letter decoding
//	vis/        — terminal mosaics of puzzle state
//	config/     — viper-backed configuration
//	cmd/advent  — the cobra CLI tying it all together
//
// The search engines are the heart of the toolkit: implement their small
// node contracts on a puzzle state and the frontier bookkeeping, cost
// accounting and cancellation come for free.
package adventcodetools
