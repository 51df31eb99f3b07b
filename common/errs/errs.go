package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// Duplicate is returned when a unique key of an item already exists.
	Duplicate = ErrorKind("Duplicate")

	// InvalidArgument is returned when an argument is not valid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or value is not supported.
	Unsupported = ErrorKind("Unsupported")

	// InternalError is returned when something unexpected happened inside the indexer.
	InternalError = ErrorKind("Internal Error")

	// Timeout is returned when an operation did not finish in time.
	Timeout = ErrorKind("Timeout")

	// Closed is returned when using a resource that was already closed.
	Closed = ErrorKind("Closed")

	OverflowUint128 = ErrorKind("overflow uint128")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
