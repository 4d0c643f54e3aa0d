package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shelflife/internal/domain/subscription"
	"shelflife/internal/infra/billing"
	"shelflife/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *billing.RevenueCatClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return billing.NewRevenueCatClient(config.BillingConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestSubscriptions(t *testing.T) {
	teamID := uuid.New()

	t.Run("parses tier entries", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscribers/"+teamID.String(), r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"subscriber": {
					"subscriptions": {
						"expirybusiness_monthly_default_5people": {
							"expires_date": "2030-01-01T00:00:00Z",
							"purchase_date": "2024-01-01T00:00:00Z",
							"store": "app_store",
							"unsubscribe_detected_at": null
						}
					}
				}
			}`))
		})

		entries, err := client.Subscriptions(context.Background(), teamID)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		entry, ok := entries["expirybusiness_monthly_default_5people"]
		require.True(t, ok)
		assert.Equal(t, "app_store", entry.Store)
		assert.Nil(t, entry.UnsubscribeDetectedAt)
		assert.Equal(t, 2030, entry.ExpiresDate.Year())

		snap := subscription.Resolve(entries)
		require.NotNil(t, snap)
		assert.Equal(t, 5, snap.Capacity)
	})

	t.Run("unknown subscriber has no entries", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		entries, err := client.Subscriptions(context.Background(), teamID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("server error is surfaced", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Subscriptions(context.Background(), teamID)
		assert.Error(t, err)
	})
}
