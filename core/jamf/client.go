package jamf

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"

	"device-sync/core/auth"
)

// Client exposes the Jamf Pro operations used by the sync core.
type Client interface {
	// FindComputerBySerial looks up a computer by its serial number.
	// Returns ErrNotFound when no record exists.
	FindComputerBySerial(ctx context.Context, serial string) (*Computer, error)

	// UpdatePurchasing overwrites the full purchasing field set of a
	// computer. Failures are never retried within the same run.
	UpdatePurchasing(ctx context.Context, computerID int, update PurchasingUpdate) error
}

// notFoundMarker is cached in place of a Computer for 404 lookups so the
// negative result is remembered too.
type notFoundMarker struct{}

// APIClient is a resty-backed implementation of Client with an in-run TTL
// cache over serial lookups, so a compare pass that visits the same serial
// twice issues a single request.
type APIClient struct {
	httpClient *resty.Client
	lookups    *gocache.Cache
}

// NewClient builds a Jamf Pro API client using the provided configuration
// and bearer token.
func NewClient(cfg Config, token string) *APIClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetTimeout(time.Duration(timeout) * time.Second)

	var lookups *gocache.Cache
	if cfg.CacheTTLSeconds > 0 {
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		lookups = gocache.New(ttl, 2*ttl)
	}

	return &APIClient{
		httpClient: restyClient,
		lookups:    lookups,
	}
}

// FindComputerBySerial queries the Classic API serial number endpoint.
func (c *APIClient) FindComputerBySerial(ctx context.Context, serial string) (*Computer, error) {
	if c.lookups != nil {
		if cached, ok := c.lookups.Get(serial); ok {
			if _, missing := cached.(notFoundMarker); missing {
				return nil, ErrNotFound
			}
			return cached.(*Computer), nil
		}
	}

	result := new(computerEnvelope)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(fmt.Sprintf("/JSSResource/computers/serialnumber/%s", serial))
	if err != nil {
		return nil, fmt.Errorf("looking up serial %s: %w", serial, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		if c.lookups != nil {
			c.lookups.Set(serial, notFoundMarker{}, gocache.DefaultExpiration)
		}
		return nil, ErrNotFound
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, &auth.Error{System: auth.SystemJamf, StatusCode: resp.StatusCode()}
	case resp.IsError():
		return nil, &LookupError{Serial: serial, StatusCode: resp.StatusCode()}
	}

	computer := &Computer{
		ID:           result.Computer.General.ID,
		SerialNumber: serial,
		Purchasing:   result.Computer.Purchasing,
	}
	if c.lookups != nil {
		c.lookups.Set(serial, computer, gocache.DefaultExpiration)
	}
	return computer, nil
}

// UpdatePurchasing PATCHes the v1 inventory detail endpoint with the full
// six-field purchasing payload.
func (c *APIClient) UpdatePurchasing(ctx context.Context, computerID int, update PurchasingUpdate) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(updatePayload{Purchasing: update}).
		Patch(fmt.Sprintf("/api/v1/computers-inventory-detail/%d", computerID))
	if err != nil {
		return fmt.Errorf("updating computer %d: %w", computerID, err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return &auth.Error{System: auth.SystemJamf, StatusCode: resp.StatusCode()}
	case resp.IsError():
		return &WriteError{ComputerID: computerID, StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return nil
}
