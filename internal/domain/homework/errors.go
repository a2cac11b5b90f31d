// internal/domain/homework/errors.go
package homework

import "fmt"

// Endpoint errors. These are transient: the next poll cycle is the retry.
var ErrEndpointUnreachable = fmt.Errorf("homework endpoint is unreachable")
var ErrDecode = fmt.Errorf("cannot decode homework endpoint response")

// Contract errors: the endpoint answered with something we do not understand.
var ErrMalformedResponse = fmt.Errorf("malformed homework endpoint response")
var ErrResponseNotObject = fmt.Errorf("%w: response is not an object", ErrMalformedResponse)
var ErrResponseMissingKey = fmt.Errorf("%w: missing key", ErrMalformedResponse)
var ErrResponseWrongType = fmt.Errorf("%w: unexpected value type", ErrMalformedResponse)

var ErrMissingField = fmt.Errorf("homework field is missing")
var ErrUnknownStatus = fmt.Errorf("unknown homework status")

// EndpointStatusError is returned when the endpoint answers with a non-200 code.
// Body is kept for diagnostics only and is not part of the message, so that
// identical outages produce identical error texts.
type EndpointStatusError struct {
	StatusCode int
	Body       string
}

func (e *EndpointStatusError) Error() string {
	return fmt.Sprintf("homework endpoint returned status %d", e.StatusCode)
}
