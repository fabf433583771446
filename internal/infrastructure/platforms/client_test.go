package platforms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchUsers(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"id": "h-1", "email": "alice@host.io", "user_type": "host"},
			},
			"total_pages": 3,
		})
	}))
	defer srv.Close()

	c := NewClient("host_dashboard", srv.URL+"/", "key-123")
	users, totalPages, err := c.FetchUsers(context.Background(), 2, 100)
	require.NoError(t, err)

	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, "/api/admin/users?page=2&limit=100", gotPath)
	assert.Equal(t, 3, totalPages)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@host.io", users[0].Email)
}

func TestClient_ApproveAndReject(t *testing.T) {
	var bodies []map[string]string
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("agent_dashboard", srv.URL, "key")
	ctx := context.Background()

	require.NoError(t, c.ApproveVerification(ctx, "a-7", "looks good", "admin-1"))
	require.NoError(t, c.RejectVerification(ctx, "a-8", "document blurry", "", "admin-1"))

	require.Len(t, bodies, 2)
	assert.Equal(t, "/api/admin/verifications/a-7/approve", paths[0])
	assert.Equal(t, "looks good", bodies[0]["notes"])
	assert.Equal(t, "admin-1", bodies[0]["reviewed_by"])

	assert.Equal(t, "/api/admin/verifications/a-8/reject", paths[1])
	assert.Equal(t, "document blurry", bodies[1]["reason"])
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("agent_dashboard", srv.URL, "bad-key")
	err := c.Health(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Status)
	assert.Equal(t, "agent_dashboard", statusErr.Platform)
	assert.Contains(t, statusErr.Error(), "403")
}

func TestClient_TransportError(t *testing.T) {
	c := NewClient("host_dashboard", "http://127.0.0.1:1", "key")
	err := c.Health(context.Background())
	assert.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failures are not status errors")
}
