package hn

import "errors"

var (
	// ErrInvalidURL means the input did not look like an item URL; no
	// network activity was attempted.
	ErrInvalidURL = errors.New("invalid post url")
	// ErrNotFound means the root item does not exist at the source.
	ErrNotFound = errors.New("post not found")
	// ErrNetwork wraps a transport-level failure on a root fetch. Child
	// fetch failures are absorbed and never carry this.
	ErrNetwork = errors.New("network failure")
	// ErrEmptyResult means both strategies completed but produced zero
	// top-level comments. The accompanying PostInfo is still usable.
	ErrEmptyResult = errors.New("no comments found")
)
