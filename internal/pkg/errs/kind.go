package errs

import "errors"

// Kind classifies an error for callers outside the core.
type Kind int

const (
	// Unexpected is the catch-all for errors that carry no known sentinel.
	Unexpected Kind = iota
	Validation
	NotFound
	Conflict
	Unauthorized
	UpstreamUnavailable
)

func getKindCodes() map[Kind]string {
	return map[Kind]string{
		Unexpected:          "UNEXPECTED",
		Validation:          "VALIDATION",
		NotFound:            "NOT_FOUND",
		Conflict:            "CONFLICT",
		Unauthorized:        "UNAUTHORIZED",
		UpstreamUnavailable: "UPSTREAM_UNAVAILABLE",
	}
}

// Code returns the stable machine-readable code of the kind.
func (k Kind) Code() string {
	if code, ok := getKindCodes()[k]; ok {
		return code
	}
	return getKindCodes()[Unexpected]
}

func (k Kind) String() string {
	return k.Code()
}

// KindOf walks the error chain (including errors.Join trees) and returns the kind
// of the first sentinel it recognizes.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return Unexpected
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return Validation
	case errors.Is(err, ErrObjectNotFound):
		return NotFound
	case errors.Is(err, ErrObjectAlreadyExists):
		return Conflict
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized
	case errors.Is(err, ErrUpstreamUnavailable):
		return UpstreamUnavailable
	default:
		return Unexpected
	}
}
