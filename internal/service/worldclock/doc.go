// Package worldclock renders the current civil time in a fixed list of IANA
// zones, refreshed once per interval for the lifetime of the process.
package worldclock
