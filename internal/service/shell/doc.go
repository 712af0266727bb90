// Package shell assembles the four clock features from one set of
// collaborators and owns the cross-feature exit-time hook.
package shell
