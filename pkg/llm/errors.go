package llm

import (
	"errors"
	"fmt"
)

// ErrInvalidGazette returned when the model reply has no usable headline
var ErrInvalidGazette = errors.New("invalid gazette: missing headline")

// ErrInvalidSummary returned when the model reply has neither headline nor summary
var ErrInvalidSummary = errors.New("invalid summary: empty headline and summary")

// Kind classifies provider failures for retry decisions
type Kind int

// provider error kinds
const (
	KindOther Kind = iota
	KindRateLimited
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate-limited"
	case KindUnavailable:
		return "unavailable"
	default:
		return "other"
	}
}

// ProviderError is returned by model clients, Kind is assigned at the client boundary
type ProviderError struct {
	Kind Kind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("model provider %s: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsTransient reports whether err is a provider failure worth retrying
func IsTransient(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Kind == KindRateLimited || pe.Kind == KindUnavailable
}

// kindFromStatus maps http status codes and provider status strings to a Kind
func kindFromStatus(code int, status string) Kind {
	switch {
	case code == 429 || status == "RESOURCE_EXHAUSTED":
		return KindRateLimited
	case code == 503 || status == "UNAVAILABLE":
		return KindUnavailable
	default:
		return KindOther
	}
}
