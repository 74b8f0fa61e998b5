// Package swap quotes token exchanges through the Puzzle Swap aggregator API
// and carries the route parameters the on-chain swap call needs.
package swap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/httpx"
)

const (
	// DefaultQuoteBaseURL serves off-chain route calculation.
	DefaultQuoteBaseURL = "https://swapapi.puzzleswap.org"

	// DefaultAggregatorAddress is the on-chain dApp that executes routed swaps.
	DefaultAggregatorAddress = "3PGFHzVGT4NTigwCKP1NcwoXkodVZwvBuuU"
)

type Client struct {
	http    *httpx.Client
	baseURL string
}

func New(httpClient *httpx.Client, baseURL string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultQuoteBaseURL
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Quote is one priced route. Parameters is the opaque route encoding the
// aggregator dApp consumes; it is passed through unmodified.
type Quote struct {
	Parameters   string
	EstimatedOut int64
	PriceImpact  float64
}

type quoteResponse struct {
	Parameters   string  `json:"parameters"`
	EstimatedOut int64   `json:"estimatedOut"`
	PriceImpact  float64 `json:"priceImpact"`
	Error        string  `json:"error"`
}

// Calc prices a swap of amountIn base units from one asset to another. An
// error field in the payload, a missing route, or a non-positive estimate all
// mean no usable quote exists.
func (c *Client) Calc(ctx context.Context, assetIn, assetOut string, amountIn int64) (Quote, error) {
	params := url.Values{}
	params.Set("token0", assetIn)
	params.Set("token1", assetOut)
	params.Set("amountIn", strconv.FormatInt(amountIn, 10))
	endpoint := fmt.Sprintf("%s/aggregator/calc?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, txerr.Wrap(txerr.CodeInternal, "build quote request", err)
	}
	var parsed quoteResponse
	if err := c.http.DoJSON(ctx, req, &parsed); err != nil {
		// A body the aggregator cannot produce a usable quote in is the same
		// outcome as an explicit error field; transport failures stay
		// network-level.
		if txerr.Is(err, txerr.CodeMalformed) {
			return Quote{}, txerr.Wrap(txerr.CodeQuoteUnavailable, "aggregator response unusable", err)
		}
		return Quote{}, err
	}
	if parsed.Error != "" {
		return Quote{}, txerr.Newf(txerr.CodeQuoteUnavailable, "aggregator: %s", parsed.Error)
	}
	if parsed.Parameters == "" || parsed.EstimatedOut <= 0 {
		return Quote{}, txerr.New(txerr.CodeQuoteUnavailable, "aggregator returned no route")
	}
	return Quote{
		Parameters:   parsed.Parameters,
		EstimatedOut: parsed.EstimatedOut,
		PriceImpact:  parsed.PriceImpact,
	}, nil
}
