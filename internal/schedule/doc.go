// Package schedule implements the self-rescheduling update loop shared by
// the alarm, timer, stopwatch and world-clock features.
//
// A loop waits on a ticker in its own goroutine and hands every tick to a
// Dispatcher, so the callback always runs on the UI goroutine and may touch
// widgets and feature state freely. Cancellation is cooperative: Stop (or
// the parent context) ends the wait immediately, and a callback already
// posted still runs, so callers guard against stale ticks themselves.
package schedule
