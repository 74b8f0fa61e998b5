package swap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/httpx"
)

func TestCalc(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/aggregator/calc" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("token0") != "WAVES" || q.Get("token1") != "9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi" {
			t.Errorf("unexpected token pair: %v", q)
		}
		if q.Get("amountIn") != "100000000" {
			t.Errorf("unexpected amountIn: %s", q.Get("amountIn"))
		}
		_, _ = w.Write([]byte(`{"parameters":"route-blob","estimatedOut":1234567,"priceImpact":0.12}`))
	}))
	defer srv.Close()

	client := New(httpx.New(2*time.Second, 0), srv.URL)
	quote, err := client.Calc(context.Background(), "WAVES", "9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi", 100_000_000)
	if err != nil {
		t.Fatalf("Calc failed: %v", err)
	}
	if quote.Parameters != "route-blob" || quote.EstimatedOut != 1234567 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
	if quote.PriceImpact != 0.12 {
		t.Fatalf("unexpected price impact: %f", quote.PriceImpact)
	}
}

func TestCalcAggregatorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"no route found"}`))
	}))
	defer srv.Close()

	client := New(httpx.New(2*time.Second, 0), srv.URL)
	_, err := client.Calc(context.Background(), "a", "b", 1)
	if !txerr.Is(err, txerr.CodeQuoteUnavailable) {
		t.Fatalf("expected quote-unavailable error, got %v", err)
	}
}

func TestCalcEmptyRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"parameters":"","estimatedOut":0}`))
	}))
	defer srv.Close()

	client := New(httpx.New(2*time.Second, 0), srv.URL)
	_, err := client.Calc(context.Background(), "a", "b", 1)
	if !txerr.Is(err, txerr.CodeQuoteUnavailable) {
		t.Fatalf("expected quote-unavailable error, got %v", err)
	}
}

func TestCalcMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := New(httpx.New(2*time.Second, 0), srv.URL)
	_, err := client.Calc(context.Background(), "a", "b", 1)
	if !txerr.Is(err, txerr.CodeQuoteUnavailable) {
		t.Fatalf("expected quote-unavailable error, got %v", err)
	}
}

func TestCalcServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(httpx.New(2*time.Second, 0), srv.URL)
	_, err := client.Calc(context.Background(), "a", "b", 1)
	if !txerr.Is(err, txerr.CodeNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}
