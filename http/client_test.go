package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	cfg := DefaultConfig()
	client := New(cfg)
	if client == nil {
		t.Fatal("expected client to be created")
	}
	client.Close()
}

func TestNewClientNilConfig(t *testing.T) {
	client := New(nil)
	if client == nil {
		t.Fatal("expected client to be created with default config")
	}
	if client.RateLimiter() == nil {
		t.Error("expected default client to carry a rate limiter")
	}
	client.Close()
}

func TestClientGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	}))
	defer server.Close()

	client := New(&Config{})
	defer client.Close()

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	if string(resp.Body) != "test response" {
		t.Errorf("expected 'test response', got %q", string(resp.Body))
	}
}

func TestClientDoWithHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token123" {
			t.Errorf("expected Authorization header, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(&Config{})
	defer client.Close()

	headers := map[string]string{"Authorization": "Bearer token123"}
	if _, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, headers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientDefaultUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Run("built-in agent", func(t *testing.T) {
		client := New(&Config{})
		defer client.Close()

		if _, err := client.Get(context.Background(), server.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(gotAgent, "Mozilla/5.0") {
			t.Errorf("expected browser user agent, got %q", gotAgent)
		}
	})

	t.Run("configured agent", func(t *testing.T) {
		client := New(&Config{UserAgent: "custom-agent/1.0"})
		defer client.Close()

		if _, err := client.Get(context.Background(), server.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAgent != "custom-agent/1.0" {
			t.Errorf("expected configured user agent, got %q", gotAgent)
		}
	})
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	}))
	defer server.Close()

	client := New(&Config{})
	defer client.Close()

	_, err := client.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %T", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", httpErr.StatusCode)
	}
	if string(httpErr.Body) != "missing" {
		t.Errorf("expected error body to be captured, got %q", string(httpErr.Body))
	}
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(&Config{Timeout: 20 * time.Millisecond})
	defer client.Close()

	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestClientContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(&Config{})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Get(ctx, server.URL); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
