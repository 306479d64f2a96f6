package jamf

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-sync/core/auth"
)

const lookupBody = `{
	"computer": {
		"general": {"id": 145},
		"purchasing": {
			"purchased": true,
			"life_expectancy": 3,
			"warranty_expires": "2024-11-25",
			"vendor": "AMIRIM",
			"po_date": "2021-11-25",
			"po_number": "PO-2021-78456"
		}
	}
}`

func TestFindComputerBySerial(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/JSSResource/computers/serialnumber/MXN8J2K9LM4P", r.URL.Path)
		assert.Equal(t, "Bearer jamf-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, lookupBody)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5, CacheTTLSeconds: 60}, "jamf-token")

	computer, err := client.FindComputerBySerial(context.Background(), "MXN8J2K9LM4P")
	require.NoError(t, err)
	assert.Equal(t, 145, computer.ID)
	assert.Equal(t, "MXN8J2K9LM4P", computer.SerialNumber)
	assert.Equal(t, true, computer.Purchasing.Purchased)
	assert.Equal(t, "AMIRIM", computer.Purchasing.Vendor)

	// Second lookup of the same serial is served from the cache.
	_, err = client.FindComputerBySerial(context.Background(), "MXN8J2K9LM4P")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestFindComputerBySerialNotFound(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5, CacheTTLSeconds: 60}, "jamf-token")

	_, err := client.FindComputerBySerial(context.Background(), "ABC123")
	assert.ErrorIs(t, err, ErrNotFound)

	// Negative results are cached too.
	_, err = client.FindComputerBySerial(context.Background(), "ABC123")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, requests)
}

func TestFindComputerBySerialServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5}, "jamf-token")

	_, err := client.FindComputerBySerial(context.Background(), "ABC123")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "ABC123", lookupErr.Serial)
	assert.Equal(t, http.StatusInternalServerError, lookupErr.StatusCode)
}

func TestFindComputerBySerialUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5}, "bad-token")

	_, err := client.FindComputerBySerial(context.Background(), "ABC123")

	var authErr *auth.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, auth.SystemJamf, authErr.System)
}

func TestUpdatePurchasing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/computers-inventory-detail/145", r.URL.Path)

		var payload map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		purchasing := payload["purchasing"]
		assert.Equal(t, true, purchasing["purchased"])
		assert.Equal(t, float64(3), purchasing["lifeExpectancy"])
		assert.Equal(t, "2024-11-25", purchasing["warrantyDate"])
		assert.Equal(t, "AMIRIM", purchasing["vendor"])
		assert.Equal(t, "2021-11-25", purchasing["poDate"])
		assert.Equal(t, "PO-2021-78456", purchasing["poNumber"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5}, "jamf-token")

	err := client.UpdatePurchasing(context.Background(), 145, PurchasingUpdate{
		Purchased:      true,
		LifeExpectancy: 3,
		WarrantyDate:   "2024-11-25",
		Vendor:         "AMIRIM",
		PODate:         "2021-11-25",
		PONumber:       "PO-2021-78456",
	})
	assert.NoError(t, err)
}

func TestUpdatePurchasingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "internal error")
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5}, "jamf-token")

	err := client.UpdatePurchasing(context.Background(), 145, PurchasingUpdate{})

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, 145, writeErr.ComputerID)
	assert.Equal(t, http.StatusInternalServerError, writeErr.StatusCode)
}
