package cardprocessor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sewrica/internal/adapters/out/cardprocessor"
	"sewrica/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_CreateIntent(t *testing.T) {
	orderID := kernel.NewUUID()
	amount, err := kernel.NewMoney(20000)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "20000", r.PostFormValue("amount"))
		assert.Equal(t, "etb", r.PostFormValue("currency"))
		assert.Equal(t, orderID.String(), r.PostFormValue("metadata[order_id]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_123", "client_secret": "pi_123_secret"}`))
	}))
	defer server.Close()

	client, err := cardprocessor.NewHTTPClient(server.URL, "sk_test_123")
	require.NoError(t, err)

	intent, err := client.CreateIntent(context.Background(), orderID, amount)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
}

func TestHTTPClient_CreateIntent_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client, err := cardprocessor.NewHTTPClient(server.URL, "sk_test_123")
	require.NoError(t, err)

	amount, err := kernel.NewMoney(20000)
	require.NoError(t, err)

	_, err = client.CreateIntent(context.Background(), kernel.NewUUID(), amount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 402")
}

func TestHTTPClient_CreateIntent_IncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_123"}`))
	}))
	defer server.Close()

	client, err := cardprocessor.NewHTTPClient(server.URL, "sk_test_123")
	require.NoError(t, err)

	amount, err := kernel.NewMoney(20000)
	require.NoError(t, err)

	_, err = client.CreateIntent(context.Background(), kernel.NewUUID(), amount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete intent")
}

func TestNewHTTPClient_RequiresConfig(t *testing.T) {
	_, err := cardprocessor.NewHTTPClient("", "sk_test_123")
	require.Error(t, err)

	_, err = cardprocessor.NewHTTPClient("http://localhost:9111", "")
	require.Error(t, err)
}
