package interfaces

import (
	"context"
	"venuedesk/internal/domain/entities"
)

// IClientDirectory resolves client display data for the weak ClientRef shown
// in booking output. It is never consulted to enforce invariants.

type IClientDirectory interface {
	ResolveClient(ctx context.Context, id string) (entities.ClientRef, error)
}
