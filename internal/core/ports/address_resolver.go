package ports

import (
	"context"
)

// ResolvedAddress is what a postal-code lookup yields. The street number is never
// part of it; callers supply it.
type ResolvedAddress struct {
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
}

// AddressResolver looks up a postal code.
//
// Malformed or unknown codes yield a validation error. An unreachable provider, or one
// that answers with something unparseable, yields errs.UpstreamUnavailableError.
type AddressResolver interface {
	Resolve(ctx context.Context, postalCode string) (ResolvedAddress, error)
}
