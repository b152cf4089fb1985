package fetch

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

func TestClient_Fetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "feather-test", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c := NewClient(WithUserAgent("feather-test"))
		body, err := c.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(body))
	})

	t.Run("ClientErrorIsNotRetried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		c := NewClient(WithRetries(3, time.Millisecond))
		_, err := c.Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, ErrRemoteFetch)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("ServerErrorIsRetried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte("late"))
		}))
		defer srv.Close()

		c := NewClient(WithRetries(2, time.Millisecond))
		body, err := c.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "late", string(body))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("RetriesExhausted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewClient(WithRetries(1, time.Millisecond))
		_, err := c.Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}

func TestClient_RedactsSecrets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(WithRetries(0, 0), WithSecrets("s3cr3t-token"))
	_, err := c.Fetch(context.Background(), srv.URL+"/v6/s3cr3t-token/latest/USD")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "s3cr3t-token")
	assert.Contains(t, err.Error(), "/v6/***/latest/USD")
}

func TestClient_NetworkErrorRedacted(t *testing.T) {
	c := NewClient(WithRetries(0, 0), WithSecrets("s3cr3t-token"), WithTimeout(time.Second))
	_, err := c.Fetch(context.Background(), "http://127.0.0.1:1/v6/s3cr3t-token/latest/USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteFetch)
	assert.NotContains(t, err.Error(), "s3cr3t-token")
}

func TestClient_ContextCanceledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(WithRetries(5, time.Second))
	_, err := c.Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClientFromConfig(t *testing.T) {
	c := NewClientFromConfig(Config{TimeoutSeconds: 5, Retries: 4, RetryBackoffMillis: 10, UserAgent: "ua"})
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.Equal(t, 4, c.maxRetries)
	assert.Equal(t, 10*time.Millisecond, c.retryBackoff)
	assert.Equal(t, "ua", c.userAgent)
}
