package gateway

import (
	"errors"
	"fmt"

	"mastery-dashboard/internal/domain"
)

// Kind classifies an upstream failure. Callers branch on the kind
// instead of matching error strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindRateLimited
	KindAuth
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindAuth:
		return "auth_error"
	case KindNetwork:
		return "network_error"
	default:
		return "unknown"
	}
}

// Error is the gateway's result-type error: every failed call returns
// one, carrying the classification and enough context to render a
// user-facing message.
type Error struct {
	Kind   Kind
	Status int
	RiotID string // "name#tag" of the request, when applicable
	Region domain.Region
	err    error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("gateway: %s (status %d): %v", e.Kind, e.Status, e.err)
	}
	return fmt.Sprintf("gateway: %s (status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message renders the user-facing text for this failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("Account %s not found in region %s", e.RiotID, e.Region)
	case KindRateLimited:
		return "Too many requests right now. Please wait a moment and try again."
	case KindAuth:
		return "The dashboard is not authorized to query the game API."
	case KindNetwork:
		return "Could not reach the game API. Check your connection and try again."
	default:
		return "Something went wrong while fetching data. Please try again."
	}
}

// KindOf extracts the classification from any error chain, KindUnknown
// when the error did not come from the gateway.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

func classifyStatus(status int) Kind {
	switch status {
	case 404:
		return KindNotFound
	case 429:
		return KindRateLimited
	case 401:
		return KindAuth
	default:
		return KindUnknown
	}
}
