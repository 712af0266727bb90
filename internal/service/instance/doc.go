// Package instance finds other running copies of the current executable.
package instance
