package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stridelab/backend/pkg/logger"
	"github.com/stridelab/backend/pkg/xcontext"
)

func Test_defaultClient_failoverKeepsBody(t *testing.T) {
	ctx := xcontext.WithLogger(context.Background(), logger.NewLogger(logger.SILENCE))

	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	// The dead endpoint may be tried first; the retry must resend the
	// whole body, not a consumed reader.
	generator := NewGenerator("http://127.0.0.1:1", server.URL)

	for i := 0; i < 5; i++ {
		gotBody = nil

		resp, err := generator.New("/records").
			Body(JSON{"name": "alice", "distance": 12000}).
			POST(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Code)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(gotBody, &decoded))
		require.Equal(t, "alice", decoded["name"])
		require.EqualValues(t, 12000, decoded["distance"])
	}
}
