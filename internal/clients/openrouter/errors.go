package openrouter

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates upstream failures so callers can map each one to a
// distinct user-facing message instead of swallowing a generic exception.
type Kind string

const (
	KindAuth             Kind = "auth"
	KindRateLimit        Kind = "rate_limit"
	KindQuota            Kind = "quota"
	KindModelUnavailable Kind = "model_unavailable"
	KindGeneric          Kind = "generic"
)

type Error struct {
	Kind       Kind
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("openrouter %s: %v", e.Kind, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("openrouter %s: http %d: %s", e.Kind, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("openrouter %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind of err, or KindGeneric for anything that is
// not an *Error from this package.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindGeneric
}

func classifyStatus(status int, body string) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 402:
		return KindQuota
	case status == 429:
		if strings.Contains(body, "insufficient_quota") {
			return KindQuota
		}
		return KindRateLimit
	case status == 404 || status == 503:
		return KindModelUnavailable
	default:
		return KindGeneric
	}
}
