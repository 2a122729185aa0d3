package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrInvalidCredentials
	ErrAlreadyRegistered
	ErrInvalidOtp
	ErrInvalidOrExpiredToken
	ErrValidation
	ErrUpstream
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrInvalidCredentials:    "invalid credentials",
	ErrAlreadyRegistered:     "email or phone already registered",
	ErrInvalidOtp:            "invalid or expired OTP",
	ErrInvalidOrExpiredToken: "invalid or expired reset token",
	ErrValidation:            "missing required field",
	ErrUpstream:              "upstream service failure",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrAlreadyRegistered:     http.StatusBadRequest,
	ErrInvalidOtp:            http.StatusBadRequest,
	ErrInvalidOrExpiredToken: http.StatusBadRequest,
	ErrValidation:            http.StatusBadRequest,
	ErrUpstream:              http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrInvalidCredentials:    "0004",
	ErrAlreadyRegistered:     "0005",
	ErrInvalidOtp:            "0006",
	ErrInvalidOrExpiredToken: "0007",
	ErrValidation:            "0008",
	ErrUpstream:              "0009",
}
