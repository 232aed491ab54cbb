package model

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies why a fetch sequence failed.
type FetchErrorKind string

const (
	KindNotFound            FetchErrorKind = "NOT_FOUND"
	KindRateLimited         FetchErrorKind = "RATE_LIMITED"
	KindNetworkError        FetchErrorKind = "NETWORK_ERROR"
	KindLocationUnavailable FetchErrorKind = "LOCATION_UNAVAILABLE"
	KindUnknown             FetchErrorKind = "UNKNOWN"
)

// FetchError is returned by the gateways for every failed call.
type FetchError struct {
	Kind    FetchErrorKind
	Status  int
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return string(e.Kind)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of the first FetchError in err's chain, KindUnknown
// when there is none.
func KindOf(err error) FetchErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return KindUnknown
}
