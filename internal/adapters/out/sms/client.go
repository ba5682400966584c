// Package sms implements the MessagingGateway port against a Twilio-style
// REST API: form-encoded message creation authenticated with account
// credentials.
package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gofer/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://api.twilio.com"
	requestTimeout = 15 * time.Second
)

// Client talks to the SMS provider's REST API.
type Client struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an SMS provider client. baseURL may be empty to use the
// provider's production endpoint; tests point it at a local server.
func NewClient(accountSID, authToken, fromNumber, baseURL string) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, errors.New("sms provider credentials are required")
	}
	if fromNumber == "" {
		return nil, errors.New("sms sender number is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// messageResponse is the provider's message object, reduced to what we use.
type messageResponse struct {
	SID          string `json:"sid"`
	ErrorMessage string `json:"error_message"`
}

// Send submits one SMS and returns the provider's message identifier.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	if to == "" {
		return "", errs.NewValueIsRequiredError("to")
	}
	if body == "" {
		return "", errs.NewValueIsRequiredError("body")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sms provider request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var message messageResponse
	if err := json.Unmarshal(raw, &message); err != nil {
		return "", err
	}
	if message.SID == "" {
		return "", fmt.Errorf("sms provider accepted without message id: %s", message.ErrorMessage)
	}

	return message.SID, nil
}
