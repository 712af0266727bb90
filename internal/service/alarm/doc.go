// Package alarm implements the wake-up alarm: Idle -> Armed -> Triggered,
// with Deactivate returning an armed alarm to Idle.
package alarm
