// Package node is the read/submit client for a Waves node's REST API:
// script evaluation, balance and asset lookups, and transaction broadcast.
// It performs exactly one network call per operation; retry and caching
// policy belong to callers.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/httpx"
)

const DefaultNodeURL = "https://nodes.wavesnodes.com"

type Client struct {
	http    *httpx.Client
	baseURL string
}

func New(httpClient *httpx.Client, nodeURL string) *Client {
	nodeURL = strings.TrimSpace(nodeURL)
	if nodeURL == "" {
		nodeURL = DefaultNodeURL
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(nodeURL, "/")}
}

func (c *Client) BaseURL() string { return c.baseURL }

type evalResult struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type evalResponse struct {
	Result  *evalResult `json:"result"`
	Error   int         `json:"error"`
	Message string      `json:"message"`
}

// Evaluate runs a read-only expression against a dApp and returns the raw
// result value. A payload-level error from the contract surfaces as a
// contract error with the node's message verbatim.
func (c *Client) Evaluate(ctx context.Context, contract, expr string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]string{"expr": expr})
	if err != nil {
		return nil, txerr.Wrap(txerr.CodeInternal, "encode evaluate request", err)
	}
	endpoint := fmt.Sprintf("%s/utils/script/evaluate/%s", c.baseURL, url.PathEscape(contract))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, txerr.Wrap(txerr.CodeInternal, "build evaluate request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, txerr.Newf(txerr.CodeNetwork, "node unavailable (status %d)", resp.StatusCode)
	}

	var parsed evalResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, txerr.Wrap(txerr.CodeMalformed, "decode evaluate response", err)
	}
	if parsed.Message != "" || parsed.Error != 0 {
		msg := parsed.Message
		if msg == "" {
			msg = fmt.Sprintf("contract error %d", parsed.Error)
		}
		return nil, txerr.New(txerr.CodeContract, msg)
	}
	if parsed.Result == nil || len(parsed.Result.Value) == 0 {
		return nil, txerr.New(txerr.CodeMalformed, "evaluate response missing result value")
	}
	return parsed.Result.Value, nil
}

// EvaluateJSONString evaluates an expression whose result value is a string
// holding encoded JSON, and returns the decoded inner document.
func (c *Client) EvaluateJSONString(ctx context.Context, contract, expr string) (json.RawMessage, error) {
	value, err := c.Evaluate(ctx, contract, expr)
	if err != nil {
		return nil, err
	}
	var inner string
	if err := json.Unmarshal(value, &inner); err != nil {
		return nil, txerr.Wrap(txerr.CodeMalformed, "evaluate result is not a string value", err)
	}
	if !json.Valid([]byte(inner)) {
		return nil, txerr.New(txerr.CodeMalformed, "evaluate result string is not valid JSON")
	}
	return json.RawMessage(inner), nil
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

// WavesBalance returns the native base-unit balance of an address.
func (c *Client) WavesBalance(ctx context.Context, address string) (int64, error) {
	endpoint := fmt.Sprintf("%s/addresses/balance/%s", c.baseURL, url.PathEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, txerr.Wrap(txerr.CodeInternal, "build balance request", err)
	}
	var parsed balanceResponse
	if err := c.http.DoJSON(ctx, req, &parsed); err != nil {
		return 0, err
	}
	return parsed.Balance, nil
}

// AssetBalance returns the base-unit balance of an address for one asset.
func (c *Client) AssetBalance(ctx context.Context, address, assetID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/assets/balance/%s/%s", c.baseURL, url.PathEscape(address), url.PathEscape(assetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, txerr.Wrap(txerr.CodeInternal, "build asset balance request", err)
	}
	var parsed balanceResponse
	if err := c.http.DoJSON(ctx, req, &parsed); err != nil {
		return 0, err
	}
	return parsed.Balance, nil
}

type AssetDetails struct {
	AssetID  string `json:"assetId"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

// AssetDetails returns issue-time metadata for an asset, in particular its
// decimal precision.
func (c *Client) AssetDetails(ctx context.Context, assetID string) (AssetDetails, error) {
	endpoint := fmt.Sprintf("%s/assets/details/%s", c.baseURL, url.PathEscape(assetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return AssetDetails{}, txerr.Wrap(txerr.CodeInternal, "build asset details request", err)
	}
	var parsed AssetDetails
	if err := c.http.DoJSON(ctx, req, &parsed); err != nil {
		return AssetDetails{}, err
	}
	if parsed.AssetID == "" {
		return AssetDetails{}, txerr.New(txerr.CodeMalformed, "asset details missing assetId")
	}
	return parsed, nil
}

// BroadcastResult distinguishes a node that accepted the transaction from a
// node that rejected it at validation. A rejection is not an error: it is
// the chain-level failure tier callers inspect through the success flag.
type BroadcastResult struct {
	Accepted bool
	TxID     string
	Message  string
}

// Broadcast submits a signed transaction. Only transport failures and
// unreadable responses return errors.
func (c *Client) Broadcast(ctx context.Context, signedTx any) (BroadcastResult, error) {
	body, err := json.Marshal(signedTx)
	if err != nil {
		return BroadcastResult{}, txerr.Wrap(txerr.CodeInternal, "encode transaction", err)
	}
	endpoint := c.baseURL + "/transactions/broadcast"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return BroadcastResult{}, txerr.Wrap(txerr.CodeInternal, "build broadcast request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return BroadcastResult{}, err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return BroadcastResult{}, txerr.Newf(txerr.CodeNetwork, "node unavailable (status %d)", resp.StatusCode)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var accepted struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(resp.Body, &accepted); err != nil || accepted.ID == "" {
			return BroadcastResult{}, txerr.New(txerr.CodeMalformed, "broadcast response missing transaction id")
		}
		return BroadcastResult{Accepted: true, TxID: accepted.ID}, nil
	}

	var rejected struct {
		Error   int    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body, &rejected); err != nil || rejected.Message == "" {
		return BroadcastResult{}, txerr.Newf(txerr.CodeMalformed, "unreadable rejection (status %d)", resp.StatusCode)
	}
	return BroadcastResult{Accepted: false, Message: rejected.Message}, nil
}
