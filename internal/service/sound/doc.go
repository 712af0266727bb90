// Package sound plays the platform alert tone through the tools every
// desktop OS ships with.
package sound
