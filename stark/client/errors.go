package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredentials means a private endpoint was called without API
	// credentials configured.
	ErrNoCredentials = errors.New("api credentials not configured")

	// ErrNoSigner means an action needed a local signature but no stark key
	// material is configured. Supplying a pre-computed signature on the
	// action params avoids the requirement.
	ErrNoSigner = errors.New("cannot sign action: no stark key material configured")

	// ErrMissingLPKey means a fast withdrawal was submitted without the
	// liquidity provider's stark public key, which the conditional transfer
	// must be signed against.
	ErrMissingLPKey = errors.New("fast withdrawal requires the liquidity provider stark key")
)

// SignerError marks a failure inside the stark signing capability itself,
// as opposed to missing key material (ErrNoSigner) or transport errors.
// Callers match it with errors.As.
type SignerError struct {
	Action string // "order", "withdrawal", "fast withdrawal", "transfer"
	Err    error
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("sign %s: %v", e.Action, e.Err)
}

func (e *SignerError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the exchange, passed through without
// interpretation or retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange returned %d: %s", e.StatusCode, e.Body)
}
