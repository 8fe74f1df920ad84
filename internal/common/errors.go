// Package common defines shared constants and sentinel errors used across
// the Autoscribe client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Flow-level errors. Both are recoverable: they are surfaced to the
	// user as notifications and never change the visible form.
	ErrValidation   = errors.New("validation failed")
	ErrAuthRejected = errors.New("authentication failed")

	// Transport errors (network or response parsing).
	ErrUnavailable = errors.New("server unavailable")

	// Capability errors (absent speech engine). Degrades to a spoken or
	// no-op fallback, never fatal.
	ErrUnsupportedCapability = errors.New("capability not supported")
)
