// Package payments implements the PaymentGateway port against a Stripe-style
// REST API: form-encoded requests authenticated with a secret key, JSON
// responses, and HMAC-signed webhook callbacks.
package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.stripe.com"
	requestTimeout = 15 * time.Second

	// webhookTolerance bounds how stale a signed webhook timestamp may be.
	webhookTolerance = 5 * time.Minute
)

// Client talks to the payment provider's REST API.
type Client struct {
	apiKey        string
	webhookSecret string
	baseURL       string
	httpClient    *http.Client
}

// NewClient creates a payment provider client. baseURL may be empty to use
// the provider's production endpoint; tests point it at a local server.
func NewClient(apiKey, webhookSecret, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("payment provider api key is required")
	}
	if webhookSecret == "" {
		return nil, errors.New("payment provider webhook secret is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    &http.Client{Timeout: requestTimeout},
	}, nil
}

// customerResponse is the provider's customer object, reduced to what we use.
type customerResponse struct {
	ID string `json:"id"`
}

// intentResponse is the provider's payment intent object, reduced to what we
// use.
type intentResponse struct {
	ID                string `json:"id"`
	ClientSecret      string `json:"client_secret"`
	Status            string `json:"status"`
	LatestCharge      string `json:"latest_charge"`
	PaymentMethodType string `json:"payment_method_type"`
	Last4             string `json:"last4"`
	LastPaymentError  *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

// refundResponse is the provider's refund object, reduced to what we use.
type refundResponse struct {
	ID string `json:"id"`
}

// CreateCustomer registers a billing profile with the provider.
func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("name", name)

	var resp customerResponse
	if err := c.post(ctx, "/v1/customers", form, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

// Authorize opens a payment intent for the amount. The intent is not
// confirmed here: the customer's client completes it with the returned
// secret, and the outcome arrives through the webhook.
func (c *Client) Authorize(ctx context.Context, customerRef string, amount kernel.Money, description string) (ports.Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount.Cents(), 10))
	form.Set("currency", "usd")
	form.Set("customer", customerRef)
	form.Set("description", description)
	form.Set("automatic_payment_methods[enabled]", "true")

	var resp intentResponse
	if err := c.post(ctx, "/v1/payment_intents", form, &resp); err != nil {
		return ports.Charge{}, err
	}

	return ports.Charge{
		IntentRef:    resp.ID,
		ClientSecret: resp.ClientSecret,
	}, nil
}

// Retrieve fetches the provider's current view of a payment intent.
func (c *Client) Retrieve(ctx context.Context, intentRef string) (ports.IntentStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/payment_intents/"+url.PathEscape(intentRef), nil)
	if err != nil {
		return ports.IntentStatus{}, err
	}
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.IntentStatus{}, fmt.Errorf("payment provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ports.IntentStatus{}, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.IntentStatus{}, fmt.Errorf("payment provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var intent intentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return ports.IntentStatus{}, err
	}

	status := ports.IntentStatus{
		Status:     intent.Status,
		ChargeRef:  intent.LatestCharge,
		MethodType: intent.PaymentMethodType,
		Last4:      intent.Last4,
	}
	if intent.LastPaymentError != nil {
		status.FailureReason = intent.LastPaymentError.Message
	}

	return status, nil
}

// Reverse refunds a previously captured charge.
func (c *Client) Reverse(ctx context.Context, chargeRef string, amount kernel.Money) (string, error) {
	form := url.Values{}
	form.Set("charge", chargeRef)
	form.Set("amount", strconv.FormatInt(amount.Cents(), 10))

	var resp refundResponse
	if err := c.post(ctx, "/v1/refunds", form, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

// webhookBody is the provider's event envelope, reduced to what we use.
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		Object intentResponse `json:"object"`
	} `json:"data"`
}

// VerifyWebhook authenticates a provider callback. The signature header has
// the form "t=<unix>,v1=<hex>" where v1 is HMAC-SHA256 over "<t>.<payload>"
// keyed with the webhook secret.
func (c *Client) VerifyWebhook(payload []byte, signature string) (ports.WebhookEvent, error) {
	timestamp, expected, err := parseSignatureHeader(signature)
	if err != nil {
		return ports.WebhookEvent{}, err
	}

	age := time.Since(time.Unix(timestamp, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return ports.WebhookEvent{}, ports.ErrWebhookSignature
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), expected) {
		return ports.WebhookEvent{}, ports.ErrWebhookSignature
	}

	var body webhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return ports.WebhookEvent{}, fmt.Errorf("webhook payload decode: %w", err)
	}

	event := ports.WebhookEvent{
		Type:       body.Type,
		IntentRef:  body.Data.Object.ID,
		ChargeRef:  body.Data.Object.LatestCharge,
		MethodType: body.Data.Object.PaymentMethodType,
		Last4:      body.Data.Object.Last4,
	}
	if body.Data.Object.LastPaymentError != nil {
		event.FailureReason = body.Data.Object.LastPaymentError.Message
	}

	return event, nil
}

// parseSignatureHeader splits "t=<unix>,v1=<hex>" into its parts.
func parseSignatureHeader(signature string) (int64, []byte, error) {
	var timestamp int64
	var expected []byte

	for _, part := range strings.Split(signature, ",") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, ports.ErrWebhookSignature
			}
			timestamp = ts
		case "v1":
			mac, err := hex.DecodeString(value)
			if err != nil {
				return 0, nil, ports.ErrWebhookSignature
			}
			expected = mac
		}
	}

	if timestamp == 0 || len(expected) == 0 {
		return 0, nil, ports.ErrWebhookSignature
	}

	return timestamp, expected, nil
}

// post sends a form-encoded request and decodes the JSON response into out.
// Non-2xx responses are returned as errors carrying the provider's body.
func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payment provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("payment provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.Unmarshal(body, out)
}
