// Package exitlog persists the instants at which timers completed, one
// RFC 3339 timestamp per line, so the exit-time hook leaves a trail beyond
// the log stream.
package exitlog
