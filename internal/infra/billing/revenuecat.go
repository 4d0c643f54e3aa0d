package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shelflife/internal/domain/subscription"
	"shelflife/internal/pkg/config"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

// RevenueCatClient fetches a team's subscription entries from the RevenueCat
// REST API. The team id doubles as the RevenueCat app user id.
type RevenueCatClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewRevenueCatClient(cfg config.BillingConfig) *RevenueCatClient {
	return &RevenueCatClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type subscriberResponse struct {
	Subscriber struct {
		Subscriptions map[string]subscriptionEntry `json:"subscriptions"`
	} `json:"subscriber"`
}

type subscriptionEntry struct {
	ExpiresDate           string  `json:"expires_date"`
	PurchaseDate          string  `json:"purchase_date"`
	Store                 string  `json:"store"`
	UnsubscribeDetectedAt *string `json:"unsubscribe_detected_at"`
}

// Subscriptions returns every tier entry the provider reports for the team,
// keyed by tier name. An unknown subscriber yields an empty map.
func (c *RevenueCatClient) Subscriptions(ctx context.Context, teamID uuid.UUID) (map[string]subscription.Entry, error) {
	url := fmt.Sprintf("%s/subscribers/%s", c.baseURL, teamID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build billing request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "billing request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return map[string]subscription.Entry{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("billing source returned status %d", resp.StatusCode))
	}

	var body subscriberResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode billing response")
	}

	entries := make(map[string]subscription.Entry, len(body.Subscriber.Subscriptions))
	for name, raw := range body.Subscriber.Subscriptions {
		entry, err := toEntry(raw)
		if err != nil {
			return nil, errs.Wrap(err, "invalid billing entry for tier "+name)
		}
		entries[name] = entry
	}
	return entries, nil
}

func toEntry(raw subscriptionEntry) (subscription.Entry, error) {
	expires, err := time.Parse(time.RFC3339, raw.ExpiresDate)
	if err != nil {
		return subscription.Entry{}, err
	}
	purchased, err := time.Parse(time.RFC3339, raw.PurchaseDate)
	if err != nil {
		return subscription.Entry{}, err
	}

	entry := subscription.Entry{
		ExpiresDate:  expires,
		PurchaseDate: purchased,
		Store:        raw.Store,
	}
	if raw.UnsubscribeDetectedAt != nil {
		t, err := time.Parse(time.RFC3339, *raw.UnsubscribeDetectedAt)
		if err != nil {
			return subscription.Entry{}, err
		}
		entry.UnsubscribeDetectedAt = &t
	}
	return entry, nil
}
