package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
)

func TestDoReturnsBodyForErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":199,"message":"broken"}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 0)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"error":199,"message":"broken"}` {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
}

func TestDoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 2)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after retry, got %d", resp.StatusCode)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestDoSetsDefaultHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing accept header")
		}
		if r.Header.Get("User-Agent") != "puzzlend/1.0" {
			t.Errorf("unexpected user agent: %s", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 0)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	if _, err := client.Do(context.Background(), req); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestDoTransportFailureIsNetworkError(t *testing.T) {
	client := New(500*time.Millisecond, 0)
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1", nil)
	_, err := client.Do(context.Background(), req)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !txerr.Is(err, txerr.CodeNetwork) {
		t.Fatalf("expected network error code, got %v", err)
	}
}

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"balance":42}`))
	}))
	defer srv.Close()

	client := New(2*time.Second, 0)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	var parsed struct {
		Balance int64 `json:"balance"`
	}
	if err := client.DoJSON(context.Background(), req, &parsed); err != nil {
		t.Fatalf("DoJSON failed: %v", err)
	}
	if parsed.Balance != 42 {
		t.Fatalf("expected balance 42, got %d", parsed.Balance)
	}
}

func TestDoJSONErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/server-error":
			w.WriteHeader(http.StatusInternalServerError)
		case "/not-found":
			w.WriteHeader(http.StatusNotFound)
		default:
			_, _ = w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	client := New(2*time.Second, 0)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/server-error", nil)
	if err := client.DoJSON(context.Background(), req, nil); !txerr.Is(err, txerr.CodeNetwork) {
		t.Fatalf("expected network error for 5xx, got %v", err)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/not-found", nil)
	if err := client.DoJSON(context.Background(), req, nil); !txerr.Is(err, txerr.CodeMalformed) {
		t.Fatalf("expected malformed error for 404, got %v", err)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/bad-json", nil)
	var out map[string]any
	if err := client.DoJSON(context.Background(), req, &out); !txerr.Is(err, txerr.CodeMalformed) {
		t.Fatalf("expected malformed error for bad JSON, got %v", err)
	}
}
