package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrJobNotFound
	ErrUpstreamUnavailable
	ErrOracleUnavailable
	ErrOracleResponseInvalid
	ErrNoAPIKeyConfigured
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrInvalidRequest:        "invalid request",
	ErrJobNotFound:           "batch job not found",
	ErrUpstreamUnavailable:   "cannot reach the price collector service",
	ErrOracleUnavailable:     "cannot reach the analysis service",
	ErrOracleResponseInvalid: "analysis service returned an unusable response",
	ErrNoAPIKeyConfigured:    "no analysis API key configured",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrJobNotFound:           http.StatusNotFound,
	ErrUpstreamUnavailable:   http.StatusBadGateway,
	ErrOracleUnavailable:     http.StatusBadGateway,
	ErrOracleResponseInvalid: http.StatusBadGateway,
	ErrNoAPIKeyConfigured:    http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrInvalidRequest:        "0002",
	ErrJobNotFound:           "0003",
	ErrUpstreamUnavailable:   "0004",
	ErrOracleUnavailable:     "0005",
	ErrOracleResponseInvalid: "0006",
	ErrNoAPIKeyConfigured:    "0007",
}
