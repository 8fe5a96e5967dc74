package treekv

import (
	"errors"
	"fmt"
)

// Common errors returned by the client. These can be used with errors.Is()
// to check for specific error conditions.
//
// Example:
//
//	env, err := client.GetNode(ctx, treekv.StringKey("missing"), nil)
//	if treekv.IsKeyNotFound(err) {
//	    // Key doesn't exist
//	}
var (
	// ErrInvalidKeyType is returned when a key representation cannot be
	// interpreted by the key codec.
	ErrInvalidKeyType = errors.New("treekv: invalid key type")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("treekv: invalid configuration")

	// ErrMissingBody is returned when a store response carries no body.
	ErrMissingBody = errors.New("treekv: response has no body")

	// ErrInvalidResponse is returned when a response body cannot be parsed as JSON.
	ErrInvalidResponse = errors.New("treekv: invalid JSON response")

	// ErrClientClosed is returned when an operation is attempted on a closed client.
	ErrClientClosed = errors.New("treekv: client is closed")
)

// Store error codes carried in the errorCode field of error responses.
const (
	// ErrCodeKeyNotFound indicates the requested key does not exist.
	ErrCodeKeyNotFound = 100
	// ErrCodeCompareFailed indicates a compare-and-swap condition did not hold.
	ErrCodeCompareFailed = 101
	// ErrCodeNotFile indicates a directory was addressed as a leaf.
	ErrCodeNotFile = 102
	// ErrCodeNotDir indicates a leaf was addressed as a directory.
	ErrCodeNotDir = 104
	// ErrCodeNodeExist indicates a create collided with an existing node.
	ErrCodeNodeExist = 105
	// ErrCodeDirNotEmpty indicates a non-recursive delete of a non-empty directory.
	ErrCodeDirNotEmpty = 108
)

// StoreError is a normalized store-level failure. It mirrors the store's
// native error body ({errorCode, message, cause, index}) with the HTTP
// status folded in, so callers can match on either the status or the
// store-specific code.
//
// Example:
//
//	_, err := client.Set(ctx, key, "v", &treekv.SetOptions{PrevExist: treekv.Bool(false)})
//	var se *treekv.StoreError
//	if errors.As(err, &se) && se.ErrorCode == treekv.ErrCodeNodeExist {
//	    // Key was already created by someone else
//	}
type StoreError struct {
	// Status is the HTTP status code of the error response. It is not part
	// of the wire document; parsing fills it from the response status.
	Status int `json:"-"`
	// ErrorCode is the store's machine-readable failure code.
	ErrorCode int `json:"errorCode"`
	// Message is a human-readable error description.
	Message string `json:"message"`
	// Cause names the key or condition that triggered the failure.
	Cause string `json:"cause,omitempty"`
	// Index is the store index at the time of the failure.
	Index uint64 `json:"index"`
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("treekv: store error %d (status %d): %s: %s", e.ErrorCode, e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("treekv: store error %d (status %d): %s", e.ErrorCode, e.Status, e.Message)
}

// HTTPError represents a non-2xx response whose body is not a store error
// document. The raw body is preserved for inspection.
type HTTPError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("treekv: http error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// NetworkError represents a transport-level failure such as connection
// refused, DNS resolution failure, or a broken response stream.
type NetworkError struct {
	// Op is the operation that failed (e.g. "PUT /v2/keys/foo").
	Op string
	// Err is the underlying network error.
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("treekv: network error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StoreErrorCode extracts the store error code from err, reporting whether
// err carries one.
func StoreErrorCode(err error) (int, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se.ErrorCode, true
	}
	return 0, false
}

// IsKeyNotFound reports whether err is a store "key not found" failure.
func IsKeyNotFound(err error) bool {
	code, ok := StoreErrorCode(err)
	return ok && code == ErrCodeKeyNotFound
}

// IsCompareFailed reports whether err is a store compare-and-swap failure.
// CAS operations absorb this code themselves; it is only visible through
// other request paths.
func IsCompareFailed(err error) bool {
	code, ok := StoreErrorCode(err)
	return ok && code == ErrCodeCompareFailed
}

// IsNodeExist reports whether err is a store "node exists" failure.
func IsNodeExist(err error) bool {
	code, ok := StoreErrorCode(err)
	return ok && code == ErrCodeNodeExist
}
