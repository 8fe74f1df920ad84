// Package client provides access to the external collaborators of the
// Autoscribe client: the remote authentication endpoint and the local
// storage database.
package client

import (
	"context"

	"github.com/Sharnika-sree/autoscribe/internal/client/models"
)

// Client is the remote authentication surface. Implementations normalize
// transport and server failures into the sentinel errors of this package's
// vocabulary (common.ErrUnavailable, AuthError).
type Client interface {
	// Login verifies credentials against the remote endpoint and returns
	// the issued token together with the server's user record. It never
	// persists anything; the caller owns the session.
	Login(ctx context.Context, email, password string, role models.Role) (*models.LoginResult, error)
	Close() error
}
