package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrFileNotFound indicates the document file is missing or unreadable.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidDocument indicates the document has no root or no path table.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEndpointNotFound indicates an (operation type, path) pair no longer resolves.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrCancelled indicates the operator cancelled the interactive prompt.
	ErrCancelled = errors.New("cancelled")
)

// FileNotFoundError reports a document file that could not be read.
type FileNotFoundError struct {
	Path  string
	Cause error
}

func (e *FileNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file not found: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrFileNotFound.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// InvalidDocumentError reports a document that cannot be indexed.
type InvalidDocumentError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *InvalidDocumentError) Error() string {
	msg := "invalid document"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidDocument.
func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// EndpointNotFoundError reports an endpoint identity that does not resolve.
type EndpointNotFoundError struct {
	OperationType OperationType
	Path          string
	Reason        string
}

func (e *EndpointNotFoundError) Error() string {
	return fmt.Sprintf("endpoint %s %s not found: %s", e.OperationType, e.Path, e.Reason)
}

// Is reports whether target is ErrEndpointNotFound.
func (e *EndpointNotFoundError) Is(target error) bool {
	return target == ErrEndpointNotFound
}
