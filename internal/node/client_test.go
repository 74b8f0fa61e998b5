package node

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/httpx"
)

func newTestClient(srvURL string) *Client {
	return New(httpx.New(2*time.Second, 0), srvURL)
}

func TestEvaluate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/utils/script/evaluate/3P2mUshsGaj2B5A9rSD4wwXk47fHB16Sidk" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		if req["expr"] != `getMarketJson(0, "", false)` {
			t.Errorf("unexpected expr: %s", req["expr"])
		}
		_, _ = w.Write([]byte(`{"result":{"type":"String","value":"{\"name\":\"Main\"}"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	value, err := client.Evaluate(context.Background(), "3P2mUshsGaj2B5A9rSD4wwXk47fHB16Sidk", `getMarketJson(0, "", false)`)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	var inner string
	if err := json.Unmarshal(value, &inner); err != nil {
		t.Fatalf("result value is not a string: %v", err)
	}
	if inner != `{"name":"Main"}` {
		t.Fatalf("unexpected value: %s", inner)
	}
}

func TestEvaluateContractError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":199,"message":"Index 7 out of range"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Evaluate(context.Background(), "3PContract", "getMarketJson(7)")
	if !txerr.Is(err, txerr.CodeContract) {
		t.Fatalf("expected contract error, got %v", err)
	}
	tErr, _ := txerr.As(err)
	if tErr.Message != "Index 7 out of range" {
		t.Fatalf("expected node message verbatim, got %q", tErr.Message)
	}
}

func TestEvaluateNodeDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Evaluate(context.Background(), "3PContract", "expr")
	if !txerr.Is(err, txerr.CodeNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestEvaluateMissingResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Evaluate(context.Background(), "3PContract", "expr")
	if !txerr.Is(err, txerr.CodeMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestEvaluateJSONString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"type":"String","value":"{\"active\":true}"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	raw, err := client.EvaluateJSONString(context.Background(), "3PContract", "expr")
	if err != nil {
		t.Fatalf("EvaluateJSONString failed: %v", err)
	}
	var doc struct {
		Active bool `json:"active"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil || !doc.Active {
		t.Fatalf("unexpected inner document: %s (%v)", raw, err)
	}
}

func TestEvaluateJSONStringRejectsNonStringValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"type":"Int","value":42}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.EvaluateJSONString(context.Background(), "3PContract", "expr")
	if !txerr.Is(err, txerr.CodeMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestEvaluateJSONStringRejectsInvalidInnerJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"type":"String","value":"not json at all"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.EvaluateJSONString(context.Background(), "3PContract", "expr")
	if !txerr.Is(err, txerr.CodeMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/addresses/balance/3PAddr":
			_, _ = w.Write([]byte(`{"address":"3PAddr","confirmations":0,"balance":150000000}`))
		case "/assets/balance/3PAddr/9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi":
			_, _ = w.Write([]byte(`{"address":"3PAddr","balance":2500000}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	waves, err := client.WavesBalance(context.Background(), "3PAddr")
	if err != nil {
		t.Fatalf("WavesBalance failed: %v", err)
	}
	if waves != 150000000 {
		t.Fatalf("expected 150000000, got %d", waves)
	}

	asset, err := client.AssetBalance(context.Background(), "3PAddr", "9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi")
	if err != nil {
		t.Fatalf("AssetBalance failed: %v", err)
	}
	if asset != 2500000 {
		t.Fatalf("expected 2500000, got %d", asset)
	}
}

func TestAssetDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"assetId":"9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi","name":"USDT-ERC20-PPT","decimals":6}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	details, err := client.AssetDetails(context.Background(), "9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi")
	if err != nil {
		t.Fatalf("AssetDetails failed: %v", err)
	}
	if details.Decimals != 6 || details.Name != "USDT-ERC20-PPT" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestBroadcastAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/broadcast" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"8Fh3Tx","type":16}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.Broadcast(context.Background(), map[string]any{"type": 16})
	if err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}
	if !result.Accepted || result.TxID != "8Fh3Tx" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestBroadcastRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":112,"message":"negative amount"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.Broadcast(context.Background(), map[string]any{"type": 16})
	if err != nil {
		t.Fatalf("a rejection must not be an error: %v", err)
	}
	if result.Accepted {
		t.Fatal("expected rejection")
	}
	if result.Message != "negative amount" {
		t.Fatalf("expected node message verbatim, got %q", result.Message)
	}
}

func TestBroadcastUnreadableRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Broadcast(context.Background(), map[string]any{"type": 16})
	if !txerr.Is(err, txerr.CodeMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}
