// Package services contains the application services of the Autoscribe
// client: session persistence and the authentication flow controller.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sharnika-sree/autoscribe/internal/client/models"
	"github.com/Sharnika-sree/autoscribe/internal/client/repositories/storage"
	"github.com/Sharnika-sree/autoscribe/internal/common"
	"github.com/Sharnika-sree/autoscribe/internal/dbx"
)

// Persisted keys. The primary/secondary pair is the legacy dual-key local
// session scheme; token/user belong to the remote-verified path. Both
// schemes coexist and SessionService is their sole reader and writer.
const (
	keyPrimaryUser = "autoscribe_user"
	keyCompatUser  = "currentUser"
	keyLanguage    = "preferredLanguage"
	keyToken       = "token"
	keyRemoteUser  = "user"
)

// SessionService owns the persisted session: the projection of the current
// UserRecord that survives restarts. Records never expire; they are
// overwritten by the next login/signup and removed only by Clear.
type SessionService struct {
	db *sql.DB
}

// NewSessionService constructs a SessionService bound to the given storage DB.
func NewSessionService(db *sql.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) getStorageRepo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

// Save persists user under the primary key and its normalized projection
// under the compatibility key, in one transaction so the two can never
// drift apart. When the record carries a language, the preferred-language
// key is updated as well.
func (s *SessionService) Save(ctx context.Context, user models.UserRecord) error {
	if user.ID == "" {
		return fmt.Errorf("%w: user id must not be empty", common.ErrValidation)
	}
	if !user.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrValidation, user.Role)
	}

	full, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	compat, err := json.Marshal(user.Stored())
	if err != nil {
		return fmt.Errorf("encode user projection: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyPrimaryUser, full); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyCompatUser, compat); err != nil {
			return err
		}
		if user.Language != "" {
			if err := repo.Set(ctx, keyLanguage, []byte(user.Language)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveRemote persists the outcome of a remote-verified login: the bearer
// token and the server's user record.
func (s *SessionService) SaveRemote(ctx context.Context, token string, user models.UserRecord) error {
	if token == "" {
		return fmt.Errorf("%w: token must not be empty", common.ErrValidation)
	}

	data, err := json.Marshal(user.Stored())
	if err != nil {
		return fmt.Errorf("encode user projection: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRemoteUser, data)
	})
}

// Load returns the persisted local user, reading the primary key first and
// falling back to the compatibility projection. common.ErrNotFound means no
// session exists.
func (s *SessionService) Load(ctx context.Context) (models.UserRecord, error) {
	repo := s.getStorageRepo()

	data, err := repo.Get(ctx, keyPrimaryUser)
	if err == nil {
		var u models.UserRecord
		if err := json.Unmarshal(data, &u); err != nil {
			return models.UserRecord{}, fmt.Errorf("decode stored user: %w", err)
		}
		return u, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.UserRecord{}, err
	}

	data, err = repo.Get(ctx, keyCompatUser)
	if err != nil {
		return models.UserRecord{}, err
	}
	var su models.StoredUser
	if err := json.Unmarshal(data, &su); err != nil {
		return models.UserRecord{}, fmt.Errorf("decode stored user projection: %w", err)
	}
	return su.Record(), nil
}

// CurrentRemoteUser returns the user saved by the remote login path, or
// common.ErrNotFound.
func (s *SessionService) CurrentRemoteUser(ctx context.Context) (models.UserRecord, error) {
	data, err := s.getStorageRepo().Get(ctx, keyRemoteUser)
	if err != nil {
		return models.UserRecord{}, err
	}
	var su models.StoredUser
	if err := json.Unmarshal(data, &su); err != nil {
		return models.UserRecord{}, fmt.Errorf("decode remote user: %w", err)
	}
	return su.Record(), nil
}

// PreferredLanguage returns the persisted language preference, defaulting
// to "en". The preference outlives the session itself.
func (s *SessionService) PreferredLanguage(ctx context.Context) (string, error) {
	data, err := s.getStorageRepo().Get(ctx, keyLanguage)
	if errors.Is(err, common.ErrNotFound) {
		return "en", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Clear removes the session keys of both schemes. The language preference
// is deliberately left in place; it is a preference, not a session.
func (s *SessionService) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		for _, key := range []string{keyToken, keyRemoteUser, keyPrimaryUser, keyCompatUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset wipes the entire local storage, preferences included, and reports
// how many entries were removed.
func (s *SessionService) Reset(ctx context.Context) (int, error) {
	repo := s.getStorageRepo()
	keys, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := repo.Clear(ctx); err != nil {
		return 0, err
	}
	return len(keys), nil
}

// IsAuthenticated reports whether any session exists: a token or a user key
// under either scheme.
func (s *SessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	repo := s.getStorageRepo()
	for _, key := range []string{keyToken, keyRemoteUser, keyPrimaryUser, keyCompatUser} {
		_, err := repo.Get(ctx, key)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return false, err
		}
	}
	return false, nil
}

// RequireRole decides where a guarded page should send its visitor:
// unauthenticated visitors go to the index page, users of another role go
// to their own dashboard. ok reports whether the visitor may stay.
func (s *SessionService) RequireRole(ctx context.Context, role models.Role) (redirect string, ok bool, err error) {
	user, err := s.CurrentRemoteUser(ctx)
	if errors.Is(err, common.ErrNotFound) {
		user, err = s.Load(ctx)
	}
	if errors.Is(err, common.ErrNotFound) {
		return IndexPage, false, nil
	}
	if err != nil {
		return "", false, err
	}
	if role != "" && user.Role != role {
		return user.Role.DashboardPage(), false, nil
	}
	return "", true, nil
}
