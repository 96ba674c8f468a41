package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/internal/model"
	"github.com/stridelab/backend/pkg/api"
	"github.com/stridelab/backend/pkg/testutil"
)

func newPartnerServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != "admin123" || password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func Test_clientsCaller_GetAll(t *testing.T) {
	ctx := testutil.MockContext()

	server := newPartnerServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/clients/", r.URL.Path)

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "Acme", "email": "ops@acme.test", "phone": "555-0100"},
			{"id": 2, "name": "Globex", "email": "it@globex.test", "phone": "555-0101"},
		})
	})

	caller := NewClientsCaller(api.NewGenerator(server.URL))
	clients := caller.GetAll(ctx)
	require.Len(t, clients, 2)
	require.Equal(t, 1, clients[0].ID)
	require.Equal(t, "Acme", clients[0].Name)
}

func Test_clientsCaller_CreateAndDelete(t *testing.T) {
	ctx := testutil.MockContext()

	server := newPartnerServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "Acme", body["name"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"id": 7, "name": "Acme", "email": "ops@acme.test", "phone": "555-0100",
			})
		case http.MethodDelete:
			require.Equal(t, "/clients/7/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	caller := NewClientsCaller(api.NewGenerator(server.URL))

	created := caller.Create(ctx, model.CreateExternalClientRequest{
		Name:  "Acme",
		Email: "ops@acme.test",
		Phone: "555-0100",
	})
	require.NotNil(t, created)
	require.Equal(t, 7, created.ID)

	require.True(t, caller.Delete(ctx, 7))
}

func Test_clientsCaller_failuresAreSwallowed(t *testing.T) {
	ctx := testutil.MockContext()

	server := newPartnerServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	caller := NewClientsCaller(api.NewGenerator(server.URL))
	require.Nil(t, caller.GetAll(ctx))
	require.Nil(t, caller.Get(ctx, 1))
	require.Nil(t, caller.Create(ctx, model.CreateExternalClientRequest{Name: "x"}))
	require.Nil(t, caller.Update(ctx, 1, model.UpdateExternalClientRequest{}))
	require.False(t, caller.Delete(ctx, 1))

	// A partner that is down entirely behaves the same way.
	offline := NewClientsCaller(api.NewGenerator("http://127.0.0.1:1"))
	require.Nil(t, offline.GetAll(ctx))
	require.False(t, offline.Delete(ctx, 1))
}
