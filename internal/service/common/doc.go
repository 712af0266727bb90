// Package common holds the contracts shared by the clock features.
//
// A Dispatcher runs callbacks on the single goroutine that owns the UI; a
// Notifier plays the alert tone and shows dialogs. Queue is the Dispatcher
// used in terminal mode and tests, Console the matching Notifier.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
