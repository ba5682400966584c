// Package kernel contains shared value objects used across all domain
// aggregates: identifiers and money amounts. Value objects here are immutable,
// validated at construction, and safe for concurrent use.
package kernel
