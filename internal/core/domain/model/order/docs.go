// Package order contains the Order aggregate root and its lifecycle state
// machine. The aggregate owns all status transitions; the companion mutations
// to agent statistics and payment state are coordinated by the application
// layer but always gated through the methods here.
package order
