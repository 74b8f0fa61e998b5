package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type GlobalFlags struct {
	ConfigPath  string
	JSON        bool
	Plain       bool
	Select      string
	ResultsOnly bool
	Timeout     string
	Retries     int
	Node        string
	Chain       string
	Oracle      string
	Aggregator  string
	QuoteURL    string
	Address     string
	Verbose     bool
}

type Settings struct {
	OutputMode        string
	SelectFields      []string
	ResultsOnly       bool
	Timeout           time.Duration
	Retries           int
	NodeURL           string
	Chain             string
	OracleAddress     string
	AggregatorAddress string
	QuoteBaseURL      string
	WalletAddress     string
	PrivateKey        string
	Verbose           bool
}

type fileConfig struct {
	Output  string `yaml:"output"`
	Timeout string `yaml:"timeout"`
	Retries *int   `yaml:"retries"`
	Verbose *bool  `yaml:"verbose"`
	Node    struct {
		URL   string `yaml:"url"`
		Chain string `yaml:"chain"`
	} `yaml:"node"`
	Lend struct {
		Oracle string `yaml:"oracle"`
	} `yaml:"lend"`
	Swap struct {
		Aggregator string `yaml:"aggregator"`
		QuoteURL   string `yaml:"quote_url"`
	} `yaml:"swap"`
	Wallet struct {
		Address       string `yaml:"address"`
		PrivateKey    string `yaml:"private_key"`
		PrivateKeyEnv string `yaml:"private_key_env"`
	} `yaml:"wallet"`
}

func Load(flags GlobalFlags) (Settings, error) {
	settings := defaultSettings()

	cfgPath, err := resolveConfigPath(flags.ConfigPath)
	if err != nil {
		return Settings{}, err
	}

	if err := applyFileConfig(cfgPath, &settings); err != nil {
		return Settings{}, err
	}

	applyEnv(&settings)

	if err := applyFlags(flags, &settings); err != nil {
		return Settings{}, err
	}

	if settings.OutputMode == "" {
		settings.OutputMode = "json"
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 30 * time.Second
	}
	if settings.Retries < 0 {
		settings.Retries = 0
	}
	if settings.Chain == "" {
		settings.Chain = "mainnet"
	}

	return settings, nil
}

func defaultSettings() Settings {
	return Settings{
		OutputMode: "json",
		Timeout:    30 * time.Second,
		// Every node call is a single request; opting into retries is the
		// caller's decision.
		Retries: 0,
		Chain:   "mainnet",
	}
}

func resolveConfigPath(input string) (string, error) {
	if strings.TrimSpace(input) != "" {
		return input, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "puzzlend", "config.yaml"), nil
}

func applyFileConfig(path string, settings *Settings) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if cfg.Output != "" {
		settings.OutputMode = strings.ToLower(cfg.Output)
	}
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		settings.Timeout = d
	}
	if cfg.Retries != nil {
		settings.Retries = *cfg.Retries
	}
	if cfg.Verbose != nil {
		settings.Verbose = *cfg.Verbose
	}
	if cfg.Node.URL != "" {
		settings.NodeURL = cfg.Node.URL
	}
	if cfg.Node.Chain != "" {
		settings.Chain = strings.ToLower(cfg.Node.Chain)
	}
	if cfg.Lend.Oracle != "" {
		settings.OracleAddress = cfg.Lend.Oracle
	}
	if cfg.Swap.Aggregator != "" {
		settings.AggregatorAddress = cfg.Swap.Aggregator
	}
	if cfg.Swap.QuoteURL != "" {
		settings.QuoteBaseURL = cfg.Swap.QuoteURL
	}
	if cfg.Wallet.Address != "" {
		settings.WalletAddress = cfg.Wallet.Address
	}
	if cfg.Wallet.PrivateKey != "" {
		settings.PrivateKey = cfg.Wallet.PrivateKey
	}
	if cfg.Wallet.PrivateKeyEnv != "" {
		settings.PrivateKey = os.Getenv(cfg.Wallet.PrivateKeyEnv)
	}

	return nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv("PUZZLEND_OUTPUT"); v != "" {
		settings.OutputMode = strings.ToLower(v)
	}
	if v := os.Getenv("PUZZLEND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			settings.Timeout = d
		}
	}
	if v := os.Getenv("PUZZLEND_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.Retries = n
		}
	}
	if v := os.Getenv("PUZZLEND_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.Verbose = b
		}
	}
	if v := os.Getenv("PUZZLEND_NODE_URL"); v != "" {
		settings.NodeURL = v
	}
	if v := os.Getenv("PUZZLEND_CHAIN"); v != "" {
		settings.Chain = strings.ToLower(v)
	}
	if v := os.Getenv("PUZZLEND_ORACLE"); v != "" {
		settings.OracleAddress = v
	}
	if v := os.Getenv("PUZZLEND_AGGREGATOR"); v != "" {
		settings.AggregatorAddress = v
	}
	if v := os.Getenv("PUZZLEND_QUOTE_URL"); v != "" {
		settings.QuoteBaseURL = v
	}
	if v := os.Getenv("PUZZLEND_WALLET_ADDRESS"); v != "" {
		settings.WalletAddress = v
	}
	if v := os.Getenv("PUZZLEND_PRIVATE_KEY"); v != "" {
		settings.PrivateKey = v
	}
}

func applyFlags(flags GlobalFlags, settings *Settings) error {
	if flags.JSON && flags.Plain {
		return fmt.Errorf("cannot use --json and --plain together")
	}
	if flags.JSON {
		settings.OutputMode = "json"
	}
	if flags.Plain {
		settings.OutputMode = "plain"
	}
	if strings.TrimSpace(flags.Select) != "" {
		parts := strings.Split(flags.Select, ",")
		fields := make([]string, 0, len(parts))
		for _, part := range parts {
			f := strings.TrimSpace(part)
			if f != "" {
				fields = append(fields, f)
			}
		}
		settings.SelectFields = fields
	}
	settings.ResultsOnly = flags.ResultsOnly

	if flags.Timeout != "" {
		d, err := time.ParseDuration(flags.Timeout)
		if err != nil {
			return fmt.Errorf("parse --timeout: %w", err)
		}
		settings.Timeout = d
	}
	if flags.Retries >= 0 {
		settings.Retries = flags.Retries
	}
	if flags.Node != "" {
		settings.NodeURL = flags.Node
	}
	if flags.Chain != "" {
		settings.Chain = strings.ToLower(flags.Chain)
	}
	if flags.Oracle != "" {
		settings.OracleAddress = flags.Oracle
	}
	if flags.Aggregator != "" {
		settings.AggregatorAddress = flags.Aggregator
	}
	if flags.QuoteURL != "" {
		settings.QuoteBaseURL = flags.QuoteURL
	}
	if flags.Address != "" {
		settings.WalletAddress = flags.Address
	}
	if flags.Verbose {
		settings.Verbose = true
	}

	if settings.OutputMode != "json" && settings.OutputMode != "plain" {
		return fmt.Errorf("output must be json or plain")
	}
	if settings.Chain != "mainnet" && settings.Chain != "testnet" {
		return fmt.Errorf("chain must be mainnet or testnet")
	}

	return nil
}
