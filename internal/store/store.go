package store

import (
	"context"
	"errors"

	"enrollify/internal/models"
)

// ErrNotFound is returned by FindByCNIC when no record matches.
var ErrNotFound = errors.New("user not found")

// Store is the persistence contract for registration records. Records are
// append-only: there is no update or delete, and no uniqueness is enforced
// on id or cnic. FindByCNIC returns the first match in append order.
type Store interface {
	// Init prepares the backing storage. It runs once at startup, before
	// the server accepts requests.
	Init(ctx context.Context) error
	Load(ctx context.Context) ([]models.User, error)
	Append(ctx context.Context, user models.User) error
	FindByCNIC(ctx context.Context, cnic string) (models.User, error)
}
