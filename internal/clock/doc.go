// Package clock abstracts wall-clock reads and tickers so the update loops
// can be driven deterministically in tests. Real returns the system clock;
// Fake is advanced by hand.
package clock
