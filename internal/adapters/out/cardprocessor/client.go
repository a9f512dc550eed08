package cardprocessor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/pkg/errs"
)

// HTTPClient talks to an external card payment gateway. The gateway
// exposes a Stripe-shaped payment intents endpoint and authenticates with
// a bearer secret key.
type HTTPClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, secretKey string) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}

	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func (c *HTTPClient) CreateIntent(
	ctx context.Context,
	orderID kernel.UUID,
	amount kernel.Money,
) (services.CardIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount.Amount(), 10))
	form.Set("currency", "etb")
	form.Set("metadata[order_id]", orderID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return services.CardIntent{}, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.CardIntent{}, fmt.Errorf("card processor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return services.CardIntent{}, fmt.Errorf("card processor returned status %d", resp.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return services.CardIntent{}, fmt.Errorf("failed to decode intent response: %w", err)
	}

	if intent.ID == "" || intent.ClientSecret == "" {
		return services.CardIntent{}, fmt.Errorf("card processor returned an incomplete intent")
	}

	return services.CardIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
