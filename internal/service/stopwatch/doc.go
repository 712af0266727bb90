// Package stopwatch implements the start/stop/reset stopwatch. Elapsed time
// accumulates across stops and is re-rendered once per interval while running.
package stopwatch
