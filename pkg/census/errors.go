package census

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/census-geocoder/internal/batchfile"
	"github.com/sells-group/census-geocoder/internal/resilience"
	"github.com/sells-group/census-geocoder/internal/vocab"
)

// Configuration errors returned before any request reaches the service.
var (
	// Vocabulary errors re-exported so callers need only this package.
	ErrUnrecognizedBenchmark = vocab.ErrUnrecognizedBenchmark
	ErrUnrecognizedVintage   = vocab.ErrUnrecognizedVintage
	ErrUnrecognizedLayer     = vocab.ErrUnrecognizedLayer

	// ErrNoAddress is returned when a parametrized address request has no
	// populated components.
	ErrNoAddress = eris.New("census: no address component supplied")

	// Batch file errors re-exported from the file reader.
	ErrNoFile             = batchfile.ErrNoFile
	ErrBatchTooLarge      = batchfile.ErrTooLarge
	ErrMalformedBatchFile = batchfile.ErrMalformed

	// ErrCircuitOpen is returned when sustained upstream failures have
	// opened the circuit breaker and calls are rejected without a request.
	ErrCircuitOpen = resilience.ErrCircuitOpen
)

// APIError reports a service-level failure (HTTP status >= 400).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("census: service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("census: service returned status %d: %s", e.StatusCode, e.Body)
}

// IsAPIError reports whether err wraps an APIError and returns it if so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if eris.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
