package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stayhub.admin/internal/domain/entities"
)

type consoleEnv struct {
	t       *testing.T
	cfgPath string
	hits    int64
	mux     *http.ServeMux
}

func newConsoleEnv(t *testing.T) *consoleEnv {
	t.Helper()
	env := &consoleEnv{t: t, mux: http.NewServeMux()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&env.hits, 1)
		env.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("STAYHUB_API_URL", "")

	dir := t.TempDir()
	env.cfgPath = filepath.Join(dir, "console.yaml")
	cfgBody := fmt.Sprintf("api_base_url: %s\ntoken_path: %s\n", srv.URL, filepath.Join(dir, "token"))
	require.NoError(t, os.WriteFile(env.cfgPath, []byte(cfgBody), 0o600))

	return env
}

func (env *consoleEnv) run(args ...string) (string, error) {
	env.t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--config", env.cfgPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func (env *consoleEnv) saveToken(token string) {
	env.t.Helper()
	_, err := env.run("logout")
	require.NoError(env.t, err)
	require.NoError(env.t, store.Save(token))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestLoginSavesToken(t *testing.T) {
	env := newConsoleEnv(t)
	env.mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]string{"message": "invalid email or password"})
			return
		}
		writeJSON(w, entities.LoginResult{
			AccessToken: "tok-xyz",
			TokenType:   "bearer",
			Admin:       &entities.AdminUser{Email: "ops@stayhub.io", FullName: "Ops Admin"},
		})
	})

	out, err := env.run("login", "--email", "ops@stayhub.io", "--password", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Ops Admin")

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
}

func TestLoginRejectedCredentials(t *testing.T) {
	env := newConsoleEnv(t)
	env.mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, map[string]string{"message": "invalid email or password"})
	})

	_, err := env.run("login", "--email", "ops@stayhub.io", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console login")
}

func TestMeSendsBearerToken(t *testing.T) {
	env := newConsoleEnv(t)
	env.mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-me" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]string{"message": "invalid token"})
			return
		}
		writeJSON(w, entities.AdminUser{Email: "ops@stayhub.io", FullName: "Ops Admin", Role: "super_admin"})
	})
	env.saveToken("tok-me")

	out, err := env.run("me")
	require.NoError(t, err)
	assert.Contains(t, out, "ops@stayhub.io")
	assert.Contains(t, out, "super_admin")
}

func TestUnauthenticatedClearsSession(t *testing.T) {
	env := newConsoleEnv(t)
	env.mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(w, map[string]string{"message": "token expired"})
	})
	env.saveToken("tok-stale")

	_, err := env.run("me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console login")

	_, tokenErr := store.Token()
	assert.Error(t, tokenErr)
}

func TestVerificationQueueRendersTable(t *testing.T) {
	env := newConsoleEnv(t)
	item := entities.VerificationItem{
		ID:               uuid.New(),
		PlatformUserID:   "agent-9",
		VerificationType: "identity",
		Status:           entities.VerificationPending,
		CreatedAt:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	env.mux.HandleFunc("GET /api/v1/verification/queue", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		writeJSON(w, map[string]interface{}{
			"data":  []entities.VerificationItem{item},
			"total": 1,
		})
	})
	env.saveToken("tok")

	out, err := env.run("verification", "queue", "--status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "agent-9")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "STATUS")
}

func TestVerificationShow(t *testing.T) {
	env := newConsoleEnv(t)
	id := uuid.New()
	detail := entities.VerificationDetail{
		VerificationItem: entities.VerificationItem{
			ID:               id,
			PlatformUserID:   "agent-9",
			VerificationType: "identity",
			Status:           entities.VerificationPending,
			Documents:        json.RawMessage(`{"passport":"doc-1"}`),
		},
		User:     &entities.User{ID: uuid.New(), Email: "agent9@agents.io"},
		Platform: &entities.Platform{DisplayName: "Agent Dashboard"},
	}
	env.mux.HandleFunc("GET /api/v1/verification/"+id.String(), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, detail)
	})
	env.saveToken("tok")

	out, err := env.run("verification", "show", id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "agent9@agents.io")
	assert.Contains(t, out, "Agent Dashboard")
	assert.Contains(t, out, "passport")
}

func TestApproveRequiresNotesBeforeNetworkCall(t *testing.T) {
	env := newConsoleEnv(t)
	env.saveToken("tok")
	before := atomic.LoadInt64(&env.hits)

	_, err := env.run("verification", "approve", uuid.NewString(), "--notes", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--notes")
	assert.Equal(t, before, atomic.LoadInt64(&env.hits), "no request may be issued without notes")
}

func TestRejectRequiresReasonBeforeNetworkCall(t *testing.T) {
	env := newConsoleEnv(t)
	env.saveToken("tok")
	before := atomic.LoadInt64(&env.hits)

	_, err := env.run("verification", "reject", uuid.NewString(), "--reason", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reason")
	assert.Equal(t, before, atomic.LoadInt64(&env.hits))
}

func TestApproveInvalidatesCaches(t *testing.T) {
	env := newConsoleEnv(t)
	id := uuid.New()
	env.mux.HandleFunc("POST /api/v1/verification/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"success": true,
			"message": "Verification approved",
			"data":    entities.VerificationItem{ID: id, Status: entities.VerificationApproved},
		})
	})
	env.saveToken("tok")

	out, err := env.run("verification", "approve", id.String(), "--notes", "looks good")
	require.NoError(t, err)
	assert.Contains(t, out, "approved")
	assert.Zero(t, cache.Len())
}

func TestUsersStatusRequiresReasonForSuspension(t *testing.T) {
	env := newConsoleEnv(t)
	env.saveToken("tok")
	before := atomic.LoadInt64(&env.hits)

	_, err := env.run("users", "status", uuid.NewString(), "--status", "suspended", "--reason", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reason")
	assert.Equal(t, before, atomic.LoadInt64(&env.hits))
}

func TestUsersList(t *testing.T) {
	env := newConsoleEnv(t)
	env.mux.HandleFunc("GET /api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"data": []entities.User{
				{ID: uuid.New(), Email: "host@x.io", UserType: entities.UserTypeHost, AccountStatus: entities.AccountActive},
			},
			"page": 1, "limit": 50, "total": 1, "total_pages": 1,
		})
	})
	env.saveToken("tok")

	out, err := env.run("users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "host@x.io")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestStats(t *testing.T) {
	env := newConsoleEnv(t)
	env.mux.HandleFunc("GET /api/v1/verification/statistics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, entities.VerificationStatistics{Total: 7, Pending: 4, InReview: 1, Approved: 2})
	})
	env.saveToken("tok")

	out, err := env.run("stats")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "7")
}

func TestTransportErrorMessage(t *testing.T) {
	dir := t.TempDir()
	cfgBody := fmt.Sprintf("api_base_url: http://127.0.0.1:1\ntoken_path: %s\n", filepath.Join(dir, "token"))
	cfgPath := filepath.Join(dir, "console.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--config", cfgPath, "stats"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reach")
}
