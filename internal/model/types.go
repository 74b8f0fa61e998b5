package model

import "time"

const EnvelopeVersion = "v1"

// Envelope is the agent-facing output frame shared by every command.
type Envelope struct {
	Version  string       `json:"version"`
	Success  bool         `json:"success"`
	Data     any          `json:"data,omitempty"`
	Error    *ErrorBody   `json:"error"`
	Warnings []string     `json:"warnings,omitempty"`
	Meta     EnvelopeMeta `json:"meta"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type EnvelopeMeta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Partial   bool      `json:"partial"`
}

// Market is one lending market instance, fetched fresh on every aggregation.
type Market struct {
	Index   int           `json:"index"`
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Active  bool          `json:"active"`
	Assets  []MarketAsset `json:"assets"`
}

// MarketAsset is one token supported by a market. Raw quantities are
// meaningless without their paired decimal counts; human-readable values are
// always derived from them, never stored separately.
type MarketAsset struct {
	AssetID     string `json:"asset_id"`
	Name        string `json:"name"`
	Decimals    int    `json:"decimals"`
	Supply      int64  `json:"supply"`
	SupplyAPY   int64  `json:"supply_apy"`
	APYDecimals int    `json:"apy_decimals"`
}

// PoolInfo is a filtered market asset with its derived supply APY, the shape
// returned by the stable-pool listing.
type PoolInfo struct {
	MarketIndex   int     `json:"market_index"`
	MarketName    string  `json:"market_name"`
	MarketAddress string  `json:"market_address"`
	AssetID       string  `json:"asset_id"`
	AssetName     string  `json:"asset_name"`
	Decimals      int     `json:"decimals"`
	SupplyAPY     float64 `json:"supply_apy"`
	TotalSupply   string  `json:"total_supply"`
}

// WalletPosition is a wallet's supplied balance in one (market, asset) pair.
// Both the token amount and its fiat value cross the boundary together.
type WalletPosition struct {
	MarketName    string `json:"market_name"`
	MarketAddress string `json:"market_address"`
	AssetID       string `json:"asset_id"`
	AssetName     string `json:"asset_name"`
	Supplied      string `json:"supplied"`
	SuppliedUSD   string `json:"supplied_usd"`
}

type TokenBalance struct {
	AssetID    string   `json:"asset_id"`
	Name       string   `json:"name"`
	Balance    string   `json:"balance"`
	Categories []string `json:"categories,omitempty"`
}

type NativeBalance struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}

// TransactionResult is the outcome of an attempted submission. A node-level
// rejection keeps Success=false with the node's message verbatim; it is not
// an error, and callers must check the flag.
type TransactionResult struct {
	Success       bool           `json:"success"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Operation     string         `json:"operation"`
	DApp          string         `json:"dapp_address,omitempty"`
	Function      string         `json:"function,omitempty"`
	FeeWaves      string         `json:"fee_waves"`
	Error         string         `json:"error,omitempty"`
	Context       map[string]any `json:"context,omitempty"`
}
