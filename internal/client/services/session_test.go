package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Sharnika-sree/autoscribe/internal/client/models"
	"github.com/Sharnika-sree/autoscribe/internal/client/repositories/storage"
	"github.com/Sharnika-sree/autoscribe/internal/common"
)

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM storage;
`)
	require.NoError(t, err)
	return db
}

func rawKey(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	data, err := storage.NewSQLiteRepository(db).Get(context.Background(), key)
	require.NoError(t, err)
	return data
}

func TestSessionService_SaveWritesBothKeys(t *testing.T) {
	db := setupSessionDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	user := models.UserRecord{
		ID:       "S_042",
		Role:     models.RoleStudent,
		Name:     "Student 042",
		Language: "ta",
	}
	require.NoError(t, s.Save(ctx, user))

	var primary map[string]any
	require.NoError(t, json.Unmarshal(rawKey(t, db, "autoscribe_user"), &primary))
	require.Equal(t, "student", primary["type"], "primary record labels the role as type")
	require.Equal(t, "S_042", primary["id"])

	var compat map[string]any
	require.NoError(t, json.Unmarshal(rawKey(t, db, "currentUser"), &compat))
	require.Equal(t, "student", compat["role"], "projection labels the role as role")

	require.Equal(t, []byte("ta"), rawKey(t, db, "preferredLanguage"))
}

func TestSessionService_SaveRejectsInvalidRecords(t *testing.T) {
	s := NewSessionService(setupSessionDB(t))
	ctx := context.Background()

	err := s.Save(ctx, models.UserRecord{Role: models.RoleTeacher})
	require.ErrorIs(t, err, common.ErrValidation)

	err = s.Save(ctx, models.UserRecord{ID: "x", Role: "admin"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestSessionService_LoadPrefersPrimary(t *testing.T) {
	db := setupSessionDB(t)
	s := NewSessionService(db)
	ctx := context.Background()
	repo := storage.NewSQLiteRepository(db)

	// Only the projection exists: an install written by an older version.
	require.NoError(t, repo.Set(ctx, "currentUser", []byte(`{"id":"T_old","role":"teacher","name":"Old"}`)))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "T_old", got.ID)
	require.Equal(t, models.RoleTeacher, got.Role)

	require.NoError(t, repo.Set(ctx, "autoscribe_user", []byte(`{"id":"T_new","type":"teacher","name":"New"}`)))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "T_new", got.ID, "primary key wins when both exist")
}

func TestSessionService_LoadWithoutSession(t *testing.T) {
	s := NewSessionService(setupSessionDB(t))

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSessionService_SaveRemote(t *testing.T) {
	db := setupSessionDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	user := models.UserRecord{ID: "42", Role: models.RoleTeacher, Name: "Pat", Email: "pat@x.com"}
	require.NoError(t, s.SaveRemote(ctx, "tok-abc", user))

	require.Equal(t, []byte("tok-abc"), rawKey(t, db, "token"))

	got, err := s.CurrentRemoteUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "42", got.ID)
	require.Equal(t, models.RoleTeacher, got.Role)

	require.ErrorIs(t, s.SaveRemote(ctx, "", user), common.ErrValidation)
}

func TestSessionService_IsAuthenticated(t *testing.T) {
	s := NewSessionService(setupSessionDB(t))
	ctx := context.Background()

	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Save(ctx, models.UserRecord{ID: "S_1", Role: models.RoleStudent, Name: "Student 1"}))

	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSessionService_ClearKeepsLanguage(t *testing.T) {
	db := setupSessionDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.UserRecord{ID: "S_1", Role: models.RoleStudent, Name: "Student 1", Language: "hi"}))
	require.NoError(t, s.SaveRemote(ctx, "tok", models.UserRecord{ID: "1", Role: models.RoleStudent, Name: "Student 1"}))

	require.NoError(t, s.Clear(ctx))

	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	lang, err := s.PreferredLanguage(ctx)
	require.NoError(t, err)
	require.Equal(t, "hi", lang, "language preference survives logout")
}

func TestSessionService_ResetWipesEverything(t *testing.T) {
	s := NewSessionService(setupSessionDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.UserRecord{ID: "S_1", Role: models.RoleStudent, Name: "Student 1", Language: "hi"}))

	n, err := s.Reset(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n, "user record, projection and language")

	lang, err := s.PreferredLanguage(ctx)
	require.NoError(t, err)
	require.Equal(t, "en", lang, "reset drops the preference too")
}

func TestSessionService_PreferredLanguageDefault(t *testing.T) {
	s := NewSessionService(setupSessionDB(t))

	lang, err := s.PreferredLanguage(context.Background())
	require.NoError(t, err)
	require.Equal(t, "en", lang)
}

func TestSessionService_RequireRole(t *testing.T) {
	db := setupSessionDB(t)
	s := NewSessionService(db)
	ctx := context.Background()

	redirect, ok, err := s.RequireRole(ctx, models.RoleTeacher)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "index.html", redirect, "no session goes back to the index")

	require.NoError(t, s.Save(ctx, models.UserRecord{ID: "T_1", Role: models.RoleTeacher, Name: "Pat"}))

	redirect, ok, err = s.RequireRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "teacher-dashboard.html", redirect, "wrong role lands on its own dashboard")

	redirect, ok, err = s.RequireRole(ctx, models.RoleTeacher)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, redirect)
}
