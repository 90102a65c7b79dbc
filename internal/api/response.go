package api

import (
	"io"
	"net/http"

	"github.com/plantview/plantview-cli/internal/errors"
)

// ValidateResponse validates HTTP response status codes and returns an error if not valid
func ValidateResponse(resp *http.Response, allowedCodes ...int) error {
	if len(allowedCodes) == 0 {
		allowedCodes = []int{http.StatusOK}
	}

	for _, code := range allowedCodes {
		if resp.StatusCode == code {
			return nil
		}
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return errors.ParseAPIError(resp.StatusCode, body)
}

// ValidateResponseOK validates that the response status is 200 OK
func ValidateResponseOK(resp *http.Response) error {
	return ValidateResponse(resp, http.StatusOK)
}
