package normalize

import "fmt"

// ParseError reports that no usable payload could be located in an agent
// reply envelope, or that a located payload was not decodable at all.
// It is distinct from a transport failure: the agent answered, but with
// an unusable shape.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
