package custom_error

import "fmt"

type UniqueViolationError struct {
	message string
	code    string // PostgreSQL error code "23505"
}

type ForeignKeyViolationError struct {
	message string
	code    string // PostgreSQL error code "23503"
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

// WrapDBError converts a PostgreSQL error code into a typed error.
func WrapDBError(message, code string) error {
	switch code {
	case "23505":
		return &UniqueViolationError{
			message: message,
			code:    code,
		}
	case "23503":
		return &ForeignKeyViolationError{
			message: "Value is referenced by other resources: " + message,
			code:    code,
		}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}
