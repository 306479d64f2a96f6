package abm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-sync/core/auth"
)

// devicePage builds an ABM-style page with n synthetic devices and an
// optional cursor.
func devicePage(start, n int, cursor string) map[string]any {
	data := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		data = append(data, map[string]any{
			"attributes": map[string]any{
				"serialNumber":       fmt.Sprintf("SER%04d", start+i),
				"addedToOrgDateTime": "2021-11-25T08:25:53.921Z",
				"orderNumber":        fmt.Sprintf("PO-%04d", start+i),
				"purchaseSourceType": "RESELLER",
				"purchaseSourceId":   "64AFCB0",
				"deviceModel":        "MacBook Pro 13\"",
			},
		})
	}
	page := map[string]any{"data": data}
	if cursor != "" {
		page["meta"] = map[string]any{"cursor": cursor}
	}
	return page
}

func newTestClient(srv *httptest.Server) *APIClient {
	return NewClient(Config{
		BaseURL:        srv.URL,
		PageSize:       40,
		TimeoutSeconds: 5,
	}, "test-token")
}

func TestListDevicesWalksAllPages(t *testing.T) {
	// Three pages of 40/40/20; the last page carries no cursor.
	pages := map[string]map[string]any{
		"":   devicePage(0, 40, "c1"),
		"c1": devicePage(40, 40, "c2"),
		"c2": devicePage(80, 20, ""),
	}

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/orgDevices", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "40", r.URL.Query().Get("limit"))

		page, ok := pages[r.URL.Query().Get("cursor")]
		require.True(t, ok, "unexpected cursor %q", r.URL.Query().Get("cursor"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))
	defer srv.Close()

	devices, err := newTestClient(srv).ListDevices(context.Background())
	require.NoError(t, err)

	assert.Len(t, devices, 100)
	assert.Equal(t, 3, requests, "should stop after the page lacking a cursor")
	assert.Equal(t, "SER0000", devices[0].SerialNumber)
	assert.Equal(t, "SER0099", devices[99].SerialNumber)
	assert.Equal(t, "64AFCB0", devices[0].PurchaseSourceID)
	assert.Equal(t, "MacBook Pro 13\"", devices[0].Model)
	assert.Equal(t, time.Date(2021, 11, 25, 8, 25, 53, 921000000, time.UTC), devices[0].AddedToOrg)
}

func TestListDevicesShortPageIsNotEndOfData(t *testing.T) {
	// First page returns fewer devices than the page size hint but still has
	// a cursor; the fetch must continue.
	pages := map[string]map[string]any{
		"":   devicePage(0, 3, "c1"),
		"c1": devicePage(3, 2, ""),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := pages[r.URL.Query().Get("cursor")]
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))
	defer srv.Close()

	devices, err := newTestClient(srv).ListDevices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 5)
}

func TestListDevicesCursorFromNextLink(t *testing.T) {
	first := devicePage(0, 2, "")
	first["links"] = map[string]any{"next": "https://api-business.apple.com/v1/orgDevices?limit=40&cursor=link-cursor"}
	pages := map[string]map[string]any{
		"":            first,
		"link-cursor": devicePage(2, 1, ""),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Query().Get("cursor")]
		require.True(t, ok)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))
	defer srv.Close()

	devices, err := newTestClient(srv).ListDevices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 3)
}

func TestListDevicesServerErrorAbortsFetch(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("cursor") == "" {
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(devicePage(0, 40, "c1")))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	devices, err := newTestClient(srv).ListDevices(context.Background())
	assert.Nil(t, devices, "partial results must be discarded")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
	assert.Equal(t, 2, fetchErr.Page)
}

func TestListDevicesUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).ListDevices(context.Background())

	var authErr *auth.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, auth.SystemABM, authErr.System)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}
