// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// FetchFailedMessage is the single message shown for any failed page load
const FetchFailedMessage = "Failed to fetch plants. Please check your connection and try again."

// PlantNotFoundMessage is shown when the detail route has no navigation state
const PlantNotFoundMessage = "Plant data not found. Please go back and click on a plant card."

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeAPI
	ErrorTypeNetwork
	ErrorTypeValidation
	ErrorTypeRateLimit
	ErrorTypeTimeout
	ErrorTypeNotFound
	ErrorTypeDecode
)

type APIError struct {
	StatusCode int
	Status     string
	Message    string
	ErrorType  ErrorType
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error: %s (status %d)", e.Status, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode || e.ErrorType == t.ErrorType
}

type NetworkError struct {
	Err       error
	Operation string
	URL       string
}

func (e *NetworkError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be decoded
type DecodeError struct {
	Err       error
	Operation string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError reports bad user input such as an unknown route or config key
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

var (
	// ErrFetchFailed is what the views record for every failed page load
	ErrFetchFailed = errors.New(FetchFailedMessage)

	// ErrPlantStateMissing is returned when a detail route is opened without navigation state
	ErrPlantStateMissing = errors.New(PlantNotFoundMessage)
)

// AsFetchFailure collapses any page load error into ErrFetchFailed,
// keeping the cause reachable through errors.Unwrap.
func AsFetchFailure(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrFetchFailed) {
		return err
	}
	return &fetchFailure{cause: err}
}

type fetchFailure struct {
	cause error
}

func (e *fetchFailure) Error() string {
	return FetchFailedMessage
}

func (e *fetchFailure) Is(target error) bool {
	return target == ErrFetchFailed
}

func (e *fetchFailure) Unwrap() error {
	return e.cause
}

func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var ne net.Error
	return errors.As(err, &ne)
}

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}

	return false
}

// IsServerError reports 5xx API errors
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}
	return false
}

func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}

// Class returns a short label used in logs and metrics
func Class(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsDecodeError(err):
		return "decode"
	case IsServerError(err):
		return "server"
	case IsNetworkError(err):
		return "network"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "client"
	}
	return "unknown"
}
