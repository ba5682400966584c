// Package user contains the User aggregate and the Role enum. Accounts carry
// the bcrypt password digest and the external billing reference; role-specific
// behavior (agent profiles) lives in the agent package.
package user
