// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration signals a missing or invalid required setting.
	ErrConfiguration = errors.New("configuration error")
	// ErrBackendQuery signals a failed or malformed work-tracking/source-control call.
	ErrBackendQuery = errors.New("backend query failed")
	// ErrRepositoryNotFound signals that the configured repository name matched nothing.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrPersistence signals that the blob store rejected a read, write or existence check.
	ErrPersistence = errors.New("persistence failure")
	// ErrBlobNotFound signals a missing key on read.
	ErrBlobNotFound = errors.New("blob not found")
)

// Backend names used in BackendError.
const (
	BackendWorkTracking  = "work-tracking"
	BackendSourceControl = "source-control"
)

// BackendError records which backend call failed.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrBackendQuery, e.Backend, e.Op, e.Err)
}

// Unwrap exposes both ErrBackendQuery and the cause.
func (e *BackendError) Unwrap() []error {
	return []error{ErrBackendQuery, e.Err}
}

// PersistenceError records which store operation failed on which key.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", ErrPersistence, e.Op, e.Key, e.Err)
}

// Unwrap exposes both ErrPersistence and the cause.
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}
