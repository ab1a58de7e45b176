package domain

import "time"

// StatusCode is the closed set of business status identifiers carried in
// every response envelope. Canonical codes are part of the public contract;
// they are deliberately distinct from HTTP transport status, which is 200
// for every business outcome.
type StatusCode string

const (
	StatusOK                  StatusCode = "00"
	StatusNotFound            StatusCode = "01"
	StatusAlreadyExists       StatusCode = "02"
	StatusInvalidCredentials  StatusCode = "03"
	StatusInternalServerError StatusCode = "99"
)

// Description returns the fixed human-readable message for the code.
func (c StatusCode) Description() string {
	switch c {
	case StatusOK:
		return "Successful"
	case StatusNotFound:
		return "Account Not Found"
	case StatusAlreadyExists:
		return "Account Already Exists"
	case StatusInvalidCredentials:
		return "Invalid Credentials"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}

// Response is the uniform envelope wrapping every outward-facing result.
type Response struct {
	StatusCode    StatusCode `json:"statusCode"`
	StatusMessage string     `json:"statusMessage"`
	Timestamp     string     `json:"timestamp"`
	Data          any        `json:"data"`
}

// NewResponse builds an envelope for code wrapping data, stamped with the
// current UTC time.
func NewResponse(code StatusCode, data any) *Response {
	return &Response{
		StatusCode:    code,
		StatusMessage: code.Description(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Data:          data,
	}
}
