// Package calendar maintains the puzzle progress table embedded in a
// project's README file.
//
// The table lives under a "### Puzzle calendar:" heading as a Markdown pipe
// table with one row per day (1..25) and a closing totals row. Each row
// tracks the puzzle name, earned stars, both solution values and the
// solving time. Render emits the table with hyperlinks (day and puzzle
// cells point at the puzzle page; solved cells point at the solution
// source) and Load parses it back, stripping links and emphasis, so the
// table round-trips through the README unchanged in content.
//
// Timing cells use human units chosen by magnitude (h, min, s, ms, μs);
// FormatTiming and ParseTiming convert between time.Duration and that
// textual form, and the totals row sums all parsed times.
package calendar
