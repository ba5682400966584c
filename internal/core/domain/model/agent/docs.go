// Package agent contains the Agent aggregate: the field worker profile with
// its availability flag, background check state and cumulative job
// statistics. Availability is the column the assignment arbiter
// compare-and-swaps on, so every lifecycle transition that touches it goes
// through this aggregate.
package agent
