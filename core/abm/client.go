package abm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"device-sync/core/auth"
)

// Client exposes the Apple Business Manager operations used by the sync core.
type Client interface {
	// ListDevices retrieves the complete device population, walking every
	// page of the cursor-paginated listing. A failed page aborts the fetch
	// and discards everything gathered so far.
	ListDevices(ctx context.Context) ([]Device, error)
}

// FetchError indicates the ABM device listing failed with a non-2xx response.
// It is fatal for the run: partial data is not a valid basis for
// reconciliation.
type FetchError struct {
	// StatusCode is the HTTP status of the failing page request.
	StatusCode int
	// Page is the 1-based index of the page that failed; pages before it had
	// been retrieved successfully.
	Page int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("abm device listing failed on page %d (status %d)", e.Page, e.StatusCode)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	pageSize   int
}

// NewClient builds an ABM API client using the provided configuration and
// bearer token.
func NewClient(cfg Config, token string) *APIClient {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(timeout) * time.Second)

	// Transient listing failures are retried; device writes elsewhere are not.
	if cfg.RetryCount > 0 {
		restyClient.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(1 * time.Second).
			SetRetryMaxWaitTime(10 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return false
				}
				return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
			})
	}

	return &APIClient{
		httpClient: restyClient,
		pageSize:   pageSize,
	}
}

// ListDevices fetches all org devices, following cursors until the server
// stops returning one. A short page does not end the walk; only a missing
// cursor does.
func (c *APIClient) ListDevices(ctx context.Context) ([]Device, error) {
	var devices []Device

	cursor := ""
	for page := 1; ; page++ {
		result := new(orgDevicesResponse)

		req := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("limit", strconv.Itoa(c.pageSize)).
			SetResult(result)
		if cursor != "" {
			req.SetQueryParam("cursor", cursor)
		}

		resp, err := req.Get("/orgDevices")
		if err != nil {
			return nil, fmt.Errorf("fetching org devices page %d: %w", page, err)
		}

		switch {
		case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
			return nil, &auth.Error{System: auth.SystemABM, StatusCode: resp.StatusCode()}
		case resp.IsError():
			return nil, &FetchError{StatusCode: resp.StatusCode(), Page: page}
		}

		for _, item := range result.Data {
			devices = append(devices, item.Attributes.toDevice())
		}

		next := nextCursor(result)
		if next == "" || (next == cursor && cursor != "") {
			break
		}
		cursor = next
	}

	return devices, nil
}

// nextCursor extracts the pagination cursor wherever ABM put it: the meta
// block, the links.next URL, or a top-level field.
func nextCursor(resp *orgDevicesResponse) string {
	if resp.Meta.Cursor != "" {
		return resp.Meta.Cursor
	}
	if resp.Links.Next != "" {
		if parsed, err := url.Parse(resp.Links.Next); err == nil {
			if c := parsed.Query().Get("cursor"); c != "" {
				return c
			}
		}
	}
	return resp.Cursor
}
