package utils

import (
	"fmt"
	"strconv"

	"techstep/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PaymentIntent is the subset of the provider's payment-intent object the
// workflow cares about.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// StripeClient talks to the Stripe payment-intents API over HTTP.
type StripeClient struct {
	client    *resty.Client
	secretKey string
}

// NewStripeClient builds a client from configuration.
func NewStripeClient(cfg *config.Config) *StripeClient {
	return &StripeClient{
		client:    resty.New().SetBaseURL(cfg.StripeAPIURL),
		secretKey: cfg.StripeSecretKey,
	}
}

// CreateIntent creates a payment intent for the given amount (in the
// currency's smallest unit). An idempotency key is sent so a retried
// create does not open a second intent at the provider.
func (s *StripeClient) CreateIntent(amount int64, currency string, metadata map[string]string) (*PaymentIntent, error) {
	form := map[string]string{
		"amount":   strconv.FormatInt(amount, 10),
		"currency": currency,
	}
	for k, v := range metadata {
		form["metadata["+k+"]"] = v
	}

	var intent PaymentIntent
	var apiErr stripeError
	resp, err := s.client.R().
		SetBasicAuth(s.secretKey, "").
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(form).
		SetResult(&intent).
		SetError(&apiErr).
		Post("/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stripe error: %s", apiErr.Error.Message)
	}

	return &intent, nil
}

// RetrieveIntent fetches the current state of a payment intent by id.
func (s *StripeClient) RetrieveIntent(id string) (*PaymentIntent, error) {
	var intent PaymentIntent
	var apiErr stripeError
	resp, err := s.client.R().
		SetBasicAuth(s.secretKey, "").
		SetResult(&intent).
		SetError(&apiErr).
		Get("/payment_intents/" + id)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stripe error: %s", apiErr.Error.Message)
	}

	return &intent, nil
}
