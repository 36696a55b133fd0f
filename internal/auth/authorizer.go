// Package auth is the extension point for a future access-control
// collaborator. The original tool carried a cosmetic credential prompt with
// no verification; that is modeled here as a pluggable check invoked before
// mutating commands, defaulting to allow-all.
package auth

import (
	"context"
)

// Authorizer decides whether a command may run. Implementations are invoked
// before any mutating command (everything except the list commands).
type Authorizer interface {
	Authorize(ctx context.Context, command string) error
}

// AllowAll authorizes every command. This is the default until a real
// identity provider is plugged in.
type AllowAll struct{}

// NewAllowAll creates the default authorizer.
func NewAllowAll() *AllowAll {
	return &AllowAll{}
}

// Authorize always succeeds.
func (a *AllowAll) Authorize(ctx context.Context, command string) error {
	return nil
}
