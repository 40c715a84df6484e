// pkg/storeclient/session_test.go
package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminServer(t *testing.T, validToken string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "admin@rrtraders.in" || creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "UNAUTHORIZED", "message": "invalid email or password"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"admin": map[string]string{"id": "a1", "name": "Admin", "role": "admin"},
				"token": validToken,
			},
		})
	})
	mux.HandleFunc("/api/auth/admin/protect/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "UNAUTHORIZED", "message": "unauthorized"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"admin": map[string]string{"id": "a1", "name": "Admin", "role": "admin"},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionLoginPersistsToken(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)
	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)

	admin, err := session.Login(context.Background(), "admin@rrtraders.in", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)
	assert.True(t, session.Authenticated())

	var stored string
	require.True(t, mirror.Load(sessionTokenKey, &stored))
	assert.Equal(t, "tok-123", stored)
}

func TestSessionLoginFailureLeavesNoSession(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)
	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)

	_, err := session.Login(context.Background(), "admin@rrtraders.in", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.False(t, session.Authenticated())
}

func TestSessionRestoreWithoutValidation(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)
	require.NoError(t, mirror.Store(sessionTokenKey, "tok-123"))

	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)
	assert.True(t, session.Restore())
	assert.True(t, session.Authenticated())

	// No profile yet; Restore does not call the server.
	assert.Nil(t, session.Admin())
}

func TestSessionProtectedFailureClearsEverything(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)
	require.NoError(t, mirror.Store(sessionTokenKey, "expired-token"))

	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)
	require.True(t, session.Restore())

	_, err := session.FetchProfile(context.Background())
	require.Error(t, err)

	assert.False(t, session.Authenticated())
	assert.Nil(t, session.Admin())
	var stored string
	assert.False(t, mirror.Load(sessionTokenKey, &stored))
}

func TestSessionNoTokenFailureClearsPersisted(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)

	// A token sits in the mirror but was never restored into memory.
	require.NoError(t, mirror.Store(sessionTokenKey, "stale-token"))

	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)
	_, err := session.FetchProfile(context.Background())
	require.Error(t, err)

	// The no-token failure clears the persisted token too.
	var stored string
	assert.False(t, mirror.Load(sessionTokenKey, &stored))
	assert.False(t, session.Authenticated())
}

func TestSessionProtectedSuccessLoadsProfile(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)
	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)

	_, err := session.Login(context.Background(), "admin@rrtraders.in", "secret")
	require.NoError(t, err)

	admin, err := session.FetchProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", admin.ID)
	assert.Equal(t, "a1", session.Admin().ID)
}

func TestSessionLogoutClearsEverything(t *testing.T) {
	srv := adminServer(t, "tok-123")
	mirror := testMirror(t)
	session := NewSession(New(Config{BaseURL: srv.URL}), mirror)

	_, err := session.Login(context.Background(), "admin@rrtraders.in", "secret")
	require.NoError(t, err)

	session.Logout()
	assert.False(t, session.Authenticated())
	var stored string
	assert.False(t, mirror.Load(sessionTokenKey, &stored))
}
