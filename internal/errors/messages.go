// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type APIErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Code    string `json:"code"`
}

func ParseAPIError(statusCode int, body []byte) error {
	// Try to parse JSON error response
	var apiErr APIErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return createErrorFromStatusCode(statusCode, message)
	}

	// Fallback to raw body as error message
	message := strings.TrimSpace(string(body))
	if len(message) > 200 {
		message = message[:200] + "..."
	}

	return createErrorFromStatusCode(statusCode, message)
}

func createErrorFromStatusCode(statusCode int, message string) error {
	var errorType ErrorType

	switch statusCode {
	case 404:
		errorType = ErrorTypeNotFound
		if message == "" {
			message = "Resource not found"
		}

	case 429:
		errorType = ErrorTypeRateLimit
		if message == "" {
			message = "Rate limit exceeded. Please wait before retrying"
		}

	case 408:
		errorType = ErrorTypeTimeout
		if message == "" {
			message = "Request timed out"
		}

	case 400, 422:
		errorType = ErrorTypeValidation
		if message == "" {
			message = "Invalid request parameters"
		}

	case 500, 502, 503, 504:
		errorType = ErrorTypeAPI
		if message == "" {
			message = "The catalog API is experiencing issues. Please try again later"
		}

	default:
		errorType = ErrorTypeUnknown
		if message == "" {
			message = fmt.Sprintf("Unexpected error (status %d)", statusCode)
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Status:     getHTTPStatusText(statusCode),
		Message:    message,
		ErrorType:  errorType,
	}
}

func getHTTPStatusText(code int) string {
	switch code {
	case 400:
		return "Bad Request"
	case 404:
		return "Not Found"
	case 408:
		return "Request Timeout"
	case 422:
		return "Unprocessable Entity"
	case 429:
		return "Too Many Requests"
	case 500:
		return "Internal Server Error"
	case 502:
		return "Bad Gateway"
	case 503:
		return "Service Unavailable"
	case 504:
		return "Gateway Timeout"
	default:
		return fmt.Sprintf("HTTP %d", code)
	}
}

func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Network error: %v. Please check your connection and try again.", netErr.Err)
	}

	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return "The catalog API returned a response that could not be read"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Error()
	}

	return err.Error()
}
