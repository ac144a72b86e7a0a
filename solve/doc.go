// Package solve runs registered puzzle solutions, times them, and records
// their results in the project calendar.
//
// The original workflow located a day's solver by importing its module at
// run time; here solver functions are registered explicitly on a Registry
// (day → Func) and looked up when solving. A day without a registered
// solver is reported as unsolved rather than failing.
//
// Solver functions receive the puzzle input as a slice of lines (without
// trailing newlines) and return both half-solutions; an empty string marks
// an unsolved half. SolveDay measures wall-clock time around one solver
// call, and RegisterDay persists solutions, stars and timing into the
// README calendar.
package solve
