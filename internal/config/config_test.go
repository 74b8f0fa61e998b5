package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	settings, err := Load(GlobalFlags{Retries: -1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.OutputMode != "json" {
		t.Fatalf("expected json output, got %s", settings.OutputMode)
	}
	if settings.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", settings.Timeout)
	}
	if settings.Retries != 0 {
		t.Fatalf("expected no retries by default, got %d", settings.Retries)
	}
	if settings.Chain != "mainnet" {
		t.Fatalf("expected mainnet, got %s", settings.Chain)
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "puzzlend")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := `
output: plain
timeout: 45s
node:
  url: https://example.test
  chain: testnet
lend:
  oracle: 3PCustomOracle
swap:
  aggregator: 3PCustomAggregator
  quote_url: https://quotes.example.test
wallet:
  address: 3PWallet
  private_key_env: TEST_PUZZLEND_KEY
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TEST_PUZZLEND_KEY", "secret-from-env")

	settings, err := Load(GlobalFlags{Retries: -1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.OutputMode != "plain" || settings.Timeout != 45*time.Second {
		t.Fatalf("file config not applied: %+v", settings)
	}
	if settings.NodeURL != "https://example.test" || settings.Chain != "testnet" {
		t.Fatalf("node config not applied: %+v", settings)
	}
	if settings.OracleAddress != "3PCustomOracle" || settings.AggregatorAddress != "3PCustomAggregator" {
		t.Fatalf("contract config not applied: %+v", settings)
	}
	if settings.PrivateKey != "secret-from-env" {
		t.Fatalf("private_key_env not resolved: %q", settings.PrivateKey)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "puzzlend")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("timeout: 45s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PUZZLEND_TIMEOUT", "5s")
	t.Setenv("PUZZLEND_NODE_URL", "https://env.example.test")

	settings, err := Load(GlobalFlags{Retries: -1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Timeout != 5*time.Second {
		t.Fatalf("env must override file, got %s", settings.Timeout)
	}
	if settings.NodeURL != "https://env.example.test" {
		t.Fatalf("env node url not applied: %s", settings.NodeURL)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PUZZLEND_TIMEOUT", "5s")
	t.Setenv("PUZZLEND_CHAIN", "testnet")

	settings, err := Load(GlobalFlags{Timeout: "7s", Chain: "mainnet", Retries: 4})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Timeout != 7*time.Second {
		t.Fatalf("flag must override env, got %s", settings.Timeout)
	}
	if settings.Chain != "mainnet" {
		t.Fatalf("flag chain not applied: %s", settings.Chain)
	}
	if settings.Retries != 4 {
		t.Fatalf("flag retries not applied: %d", settings.Retries)
	}
}

func TestLoadRejectsConflictingOutputFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := Load(GlobalFlags{JSON: true, Plain: true, Retries: -1}); err == nil {
		t.Fatal("expected error for --json with --plain")
	}
}

func TestLoadRejectsUnknownChain(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := Load(GlobalFlags{Chain: "stagenet", Retries: -1}); err == nil {
		t.Fatal("expected error for unknown chain")
	}
}

func TestSelectFieldsParsing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	settings, err := Load(GlobalFlags{Select: " asset_name , supply_apy,, ", Retries: -1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(settings.SelectFields) != 2 || settings.SelectFields[0] != "asset_name" {
		t.Fatalf("unexpected select fields: %v", settings.SelectFields)
	}
}
