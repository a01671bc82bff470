// Package internal provides utility functions for resolving GitLab target
// URLs. It decides whether a target references a group or the bare instance
// root.
//
// This package is intended for internal use by the importer.
package internal
