// Package payment contains the Payment aggregate tracking charge attempts
// against the external payment provider, from authorization through capture,
// decline or refund.
package payment
