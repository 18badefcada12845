package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBytes_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := New(time.Second)
	b, err := c.GetBytes(context.Background(), srv.URL+"/dog", Retry{Attempts: 3, Wait: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(b))
	assert.EqualValues(t, 3, calls.Load())
}

func TestGetBytes_GivesUpAndDoesNotRetry404(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(time.Second)
	_, err := c.GetBytes(context.Background(), srv.URL+"/missing", Retry{Attempts: 3})
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.EqualValues(t, 1, calls.Load())

	calls.Store(0)
	_, err = c.GetBytes(context.Background(), srv.URL+"/broken", Retry{Attempts: 2})
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.StatusCode)
	assert.EqualValues(t, 2, calls.Load())
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1"}`))
	}))
	defer srv.Close()

	var out struct {
		ID string `json:"id"`
	}
	err := New(time.Second).DoJSON(context.Background(), http.MethodGet, "/auth/v1/user", nil, nil, &out)
	assert.Error(t, err)

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "auth/v1/user", nil, nil, &out))
	assert.Equal(t, "u-1", out.ID)
}
