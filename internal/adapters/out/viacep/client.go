// Package viacep resolves Brazilian postal codes (CEP) through a ViaCEP-compatible
// HTTP API: GET {base}/ws/{8 digits}/json/.
package viacep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/tidwall/gjson"
)

const (
	serviceName  = "postal code lookup"
	maxBodyBytes = 64 << 10
)

var ErrPostalCodeNotFound = errors.New("postal code not found")

// Client implements ports.AddressResolver. It performs exactly one request per call
// and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "viacep"),
	}
}

var _ ports.AddressResolver = (*Client)(nil)

// Resolve keeps only the digits of postalCode. Anything other than 8 digits is
// rejected before any request is made.
func (c *Client) Resolve(ctx context.Context, postalCode string) (ports.ResolvedAddress, error) {
	cep := digitsOnly(postalCode)
	if len(cep) != 8 {
		return ports.ResolvedAddress{}, errs.NewValueIsInvalidErrorWithCause(
			"postalCode", fmt.Errorf("%q must contain 8 digits", postalCode))
	}

	body, err := c.fetch(ctx, cep)
	if err != nil {
		c.logger.WarnContext(ctx, "postal code lookup failed", "cep", cep, "error", err)
		return ports.ResolvedAddress{}, errs.NewUpstreamUnavailableError(serviceName, err)
	}

	if !gjson.ValidBytes(body) {
		c.logger.WarnContext(ctx, "postal code lookup returned malformed JSON", "cep", cep)
		return ports.ResolvedAddress{}, errs.NewUpstreamUnavailableError(
			serviceName, errors.New("malformed response body"))
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() || doc.Get("erro").Bool() {
		return ports.ResolvedAddress{}, errs.NewValueIsInvalidErrorWithCause("postalCode", ErrPostalCodeNotFound)
	}

	resolved := ports.ResolvedAddress{
		PostalCode: doc.Get("cep").String(),
		Street:     doc.Get("logradouro").String(),
		District:   doc.Get("bairro").String(),
		City:       doc.Get("localidade").String(),
		State:      doc.Get("uf").String(),
	}
	if strings.TrimSpace(resolved.PostalCode) == "" {
		resolved.PostalCode = cep
	}

	return resolved, nil
}

func (c *Client) fetch(ctx context.Context, cep string) ([]byte, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
