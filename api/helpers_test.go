package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meridianstudio/site-backend/auth"
	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/models"
)

// fakeObjectStore keeps uploads in memory so upload tests never touch a
// real bucket.
type fakeObjectStore struct {
	uploads map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: make(map[string][]byte)}
}

func (f *fakeObjectStore) BucketFor(name string) (string, bool) {
	switch name {
	case "project-images", "team-photos", "testimonial-photos", "blog-images":
		return "test-" + name, true
	}
	return "", false
}

func (f *fakeObjectStore) Upload(_ context.Context, bucket, key, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploads[bucket+"/"+key] = data
	return key, nil
}

func (f *fakeObjectStore) SignedURL(_ context.Context, bucket, key string) (string, error) {
	return fmt.Sprintf("https://storage.test/%s/%s?sig=test", bucket, key), nil
}

type testEnv struct {
	router   http.Handler
	db       database.Database
	store    *fakeObjectStore
	sessions *auth.Sessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(gdb))

	db := database.New(gdb)
	sessions := auth.NewSessions("test-secret", time.Hour)
	store := newFakeObjectStore()

	return &testEnv{
		router:   newRouter(db, store, sessions),
		db:       db,
		store:    store,
		sessions: sessions,
	}
}

// adminToken creates an admin account and returns a valid session token.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.AdminUser{Email: "admin@example.com", Name: "Admin", PasswordHash: hash}
	require.NoError(t, e.db.AdminUserRepo().Add(user))

	token, err := e.sessions.Issue(user)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}
