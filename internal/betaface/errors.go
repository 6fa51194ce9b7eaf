package betaface

import (
	"errors"
	"fmt"
)

// Kind classifies why a request produced no result.
type Kind int

const (
	KindUnknown   Kind = iota
	KindFile           // image path missing, unreadable, or a directory
	KindTransport      // network error, timeout, or cancelled context
	KindStatus         // non-2xx response
	KindMalformed      // 2xx response whose body is not JSON
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is returned by every client operation that fails.
type Error struct {
	Kind       Kind
	Op         string // "upload" or "recognize"
	Path       string // image path, uploads only
	StatusCode int    // KindStatus only
	Body       string // truncated response body, KindStatus only
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFile:
		return fmt.Sprintf("%s: cannot read image %s: %v", e.Op, e.Path, e.Err)
	case KindStatus:
		return fmt.Sprintf("%s: request failed with status %d: %s", e.Op, e.StatusCode, e.Body)
	case KindTransport:
		return fmt.Sprintf("%s: could not send request: %v", e.Op, e.Err)
	case KindMalformed:
		return fmt.Sprintf("%s: could not parse response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a client error, or KindUnknown for any other error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a client error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
