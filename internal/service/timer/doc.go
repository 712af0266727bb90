// Package timer implements the countdown timer: Idle -> Running ->
// Completed or Cancelled. Completion plays the alert, shows a dialog and
// calls the completion hook exactly once.
package timer
