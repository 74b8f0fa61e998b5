package out

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/puzzlend/puzzlend/internal/config"
	"github.com/puzzlend/puzzlend/internal/model"
)

func testEnvelope(data any) model.Envelope {
	return model.Envelope{
		Version: model.EnvelopeVersion,
		Success: true,
		Data:    data,
		Meta: model.EnvelopeMeta{
			RequestID: "req-1",
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Command:   "pools list",
		},
	}
}

func TestRenderJSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	env := testEnvelope([]model.PoolInfo{{MarketName: "Main", AssetName: "USDT-ERC20-PPT", SupplyAPY: 5.23}})
	if err := Render(&buf, env, config.Settings{OutputMode: "json"}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if parsed["version"] != model.EnvelopeVersion || parsed["success"] != true {
		t.Fatalf("unexpected envelope: %v", parsed)
	}
}

func TestRenderResultsOnly(t *testing.T) {
	var buf bytes.Buffer
	env := testEnvelope(map[string]any{"balance": "2.5"})
	if err := Render(&buf, env, config.Settings{OutputMode: "json", ResultsOnly: true}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, ok := parsed["version"]; ok {
		t.Fatal("results-only output must not contain the envelope")
	}
	if parsed["balance"] != "2.5" {
		t.Fatalf("unexpected payload: %v", parsed)
	}
}

func TestRenderSelectFields(t *testing.T) {
	var buf bytes.Buffer
	env := testEnvelope([]model.PoolInfo{
		{MarketName: "Main", AssetName: "USDT-ERC20-PPT", SupplyAPY: 5.23, TotalSupply: "5000"},
	})
	settings := config.Settings{OutputMode: "json", ResultsOnly: true, SelectFields: []string{"asset_name", "supply_apy"}}
	if err := Render(&buf, env, settings); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var parsed []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 item, got %v", parsed)
	}
	if len(parsed[0]) != 2 || parsed[0]["asset_name"] != "USDT-ERC20-PPT" {
		t.Fatalf("unexpected projection: %v", parsed[0])
	}
}

func TestRenderPlainLines(t *testing.T) {
	var buf bytes.Buffer
	env := testEnvelope([]map[string]any{
		{"name": "USDT-ERC20-PPT", "balance": "1.25"},
		{"name": "USDT-BSC-PPT", "balance": "0"},
	})
	if err := Render(&buf, env, config.Settings{OutputMode: "plain", ResultsOnly: true}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "balance=1.25 name=USDT-ERC20-PPT" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
}

func TestRenderPlainEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	env := testEnvelope([]any{})
	if err := Render(&buf, env, config.Settings{OutputMode: "plain", ResultsOnly: true}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected [], got %q", buf.String())
	}
}
