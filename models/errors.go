package models

import "fmt"

// Error taxonomy shared by services and mapped to HTTP statuses in helper.
// Services return these types directly so handlers can tag responses.

type ErrorInvalidArgument struct {
	Message string
}

func (e ErrorInvalidArgument) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorGatewayUnavailable carries the upstream status and body of a failed
// completion-service call.
type ErrorGatewayUnavailable struct {
	Message    string
	StatusCode int
	Body       string
}

func (e ErrorGatewayUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d body=%s", e.Message, e.StatusCode, e.Body)
	}
	return e.Message
}

// ErrorMalformedCompletion means the completion service answered but the
// text could not be parsed into the expected response schema.
type ErrorMalformedCompletion struct {
	Message string
}

func (e ErrorMalformedCompletion) Error() string { return e.Message }
