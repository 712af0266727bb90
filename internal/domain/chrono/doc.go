// Package chrono holds the value types shared by the clock features: the
// time-of-day an alarm waits for, the countdown length of a timer, the
// elapsed-time rendering of the stopwatch and the zoned rendering of the
// world clocks. Everything here is pure and safe for concurrent use.
package chrono
