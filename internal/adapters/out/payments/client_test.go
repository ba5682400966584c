package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("sk_test_key", "whsec_test", server.URL)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "whsec_test", "")
	assert.Error(t, err)

	_, err = NewClient("sk_test_key", "", "")
	assert.Error(t, err)
}

func TestClient_Authorize_OpensUnconfirmedIntent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2500", r.PostForm.Get("amount"))
		assert.Equal(t, "cus_123", r.PostForm.Get("customer"))
		assert.Empty(t, r.PostForm.Get("confirm"), "intent is completed by the customer's client")

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sk_test_key", user)

		fmt.Fprint(w, `{"id":"pi_1","client_secret":"pi_1_secret_xyz","status":"requires_payment_method"}`)
	})

	charge, err := client.Authorize(context.Background(), "cus_123", kernel.MustMoney(2500), "Order GO-ABC123")
	require.NoError(t, err)

	assert.Equal(t, "pi_1", charge.IntentRef)
	assert.Equal(t, "pi_1_secret_xyz", charge.ClientSecret)
}

func TestClient_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_1", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sk_test_key", user)

		fmt.Fprint(w, `{"id":"pi_1","status":"succeeded","latest_charge":"ch_1","payment_method_type":"card","last4":"4242"}`)
	})

	status, err := client.Retrieve(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", status.Status)
	assert.Equal(t, "ch_1", status.ChargeRef)
	assert.Equal(t, "card", status.MethodType)
	assert.Equal(t, "4242", status.Last4)
}

func TestClient_Retrieve_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"message":"no such payment_intent"}}`)
	})

	_, err := client.Retrieve(context.Background(), "pi_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_Authorize_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"provider down"}}`)
	})

	_, err := client.Authorize(context.Background(), "cus_123", kernel.MustMoney(2500), "Order GO-ABC123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_CreateCustomer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/customers", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "jane@example.com", r.PostForm.Get("email"))

		fmt.Fprint(w, `{"id":"cus_new"}`)
	})

	ref, err := client.CreateCustomer(context.Background(), "jane@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "cus_new", ref)
}

func TestClient_Reverse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/refunds", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ch_1", r.PostForm.Get("charge"))
		assert.Equal(t, "2500", r.PostForm.Get("amount"))

		fmt.Fprint(w, `{"id":"re_1"}`)
	})

	ref, err := client.Reverse(context.Background(), "ch_1", kernel.MustMoney(2500))
	require.NoError(t, err)
	assert.Equal(t, "re_1", ref)
}

func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestClient_VerifyWebhook_ValidSignature(t *testing.T) {
	client, err := NewClient("sk_test_key", "whsec_test", "http://localhost")
	require.NoError(t, err)

	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","latest_charge":"ch_1","payment_method_type":"card","last4":"4242"}}}`)
	signature := signPayload("whsec_test", time.Now().Unix(), payload)

	event, err := client.VerifyWebhook(payload, signature)
	require.NoError(t, err)

	assert.Equal(t, "payment_intent.succeeded", event.Type)
	assert.Equal(t, "pi_1", event.IntentRef)
	assert.Equal(t, "ch_1", event.ChargeRef)
	assert.Equal(t, "4242", event.Last4)
}

func TestClient_VerifyWebhook_RejectsBadSignatures(t *testing.T) {
	client, err := NewClient("sk_test_key", "whsec_test", "http://localhost")
	require.NoError(t, err)

	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)

	testCases := []struct {
		name      string
		signature string
	}{
		{name: "wrong secret", signature: signPayload("whsec_other", time.Now().Unix(), payload)},
		{name: "stale timestamp", signature: signPayload("whsec_test", time.Now().Add(-time.Hour).Unix(), payload)},
		{name: "malformed header", signature: "v1=zzzz"},
		{name: "empty header", signature: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.VerifyWebhook(payload, tc.signature)
			assert.ErrorIs(t, err, ports.ErrWebhookSignature)
		})
	}
}

func TestClient_VerifyWebhook_TamperedPayload(t *testing.T) {
	client, err := NewClient("sk_test_key", "whsec_test", "http://localhost")
	require.NoError(t, err)

	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	signature := signPayload("whsec_test", time.Now().Unix(), payload)

	tampered := []byte(`{"type":"payment_intent.payment_failed"}`)
	_, err = client.VerifyWebhook(tampered, signature)
	assert.ErrorIs(t, err, ports.ErrWebhookSignature)
}
