// Package lend aggregates Puzzle Lend market state and resolves wallet
// balances and supplied positions against it.
package lend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/puzzlend/puzzlend/internal/amounts"
	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/model"
	"github.com/puzzlend/puzzlend/internal/node"
)

const (
	// MarketCount is the fixed number of market indices probed per
	// aggregation pass.
	MarketCount = 5

	// DefaultOracleAddress is the Puzzle Lend contract serving market state.
	DefaultOracleAddress = "3P2mUshsGaj2B5A9rSD4wwXk47fHB16Sidk"

	// DefaultStablePrefix selects the USDT family of pool assets.
	DefaultStablePrefix = "USDT"

	// LegacyUSDTAssetID is the deprecated token that shares the USDT display
	// prefix and is excluded from stable-pool listings.
	LegacyUSDTAssetID = "34N9YcEETLWn93qYQ64EsP1x89tSruJU44RrEMSXXEPJ"
)

type Aggregator struct {
	node   *node.Client
	oracle string
	log    *zap.Logger
}

func NewAggregator(nodeClient *node.Client, oracleAddress string, logger *zap.Logger) *Aggregator {
	oracleAddress = strings.TrimSpace(oracleAddress)
	if oracleAddress == "" {
		oracleAddress = DefaultOracleAddress
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{node: nodeClient, oracle: oracleAddress, log: logger}
}

type quantityDoc struct {
	Value    int64 `json:"value"`
	Decimals int   `json:"decimals"`
}

type assetDoc struct {
	AssetID   string      `json:"assetId"`
	Name      string      `json:"name"`
	Decimals  int         `json:"decimals"`
	Supply    int64       `json:"supply"`
	SupplyAPY quantityDoc `json:"supplyAPY"`
}

type marketDoc struct {
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Active  bool       `json:"active"`
	Assets  []assetDoc `json:"assets"`
}

// Markets fetches all market indices and returns the ones that parsed.
// Per-index failures are logged and reported as warnings; the call fails
// only when every index failed.
func (a *Aggregator) Markets(ctx context.Context) ([]model.Market, []string, error) {
	markets := make([]model.Market, 0, MarketCount)
	var warnings []string
	for i := 0; i < MarketCount; i++ {
		expr := fmt.Sprintf(`getMarketJson(%d, "", false)`, i)
		raw, err := a.node.EvaluateJSONString(ctx, a.oracle, expr)
		if err != nil {
			a.log.Warn("skipping market index", zap.Int("index", i), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("market %d skipped: %v", i, err))
			continue
		}
		var doc marketDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			a.log.Warn("skipping unparseable market", zap.Int("index", i), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("market %d skipped: %v", i, err))
			continue
		}
		markets = append(markets, marketFromDoc(i, doc))
	}
	if len(markets) == 0 {
		return nil, warnings, txerr.New(txerr.CodeNoMarkets, "no lending markets available")
	}
	return markets, warnings, nil
}

func marketFromDoc(index int, doc marketDoc) model.Market {
	assets := make([]model.MarketAsset, 0, len(doc.Assets))
	for _, asset := range doc.Assets {
		assets = append(assets, model.MarketAsset{
			AssetID:     asset.AssetID,
			Name:        asset.Name,
			Decimals:    asset.Decimals,
			Supply:      asset.Supply,
			SupplyAPY:   asset.SupplyAPY.Value,
			APYDecimals: asset.SupplyAPY.Decimals,
		})
	}
	return model.Market{
		Index:   index,
		Name:    doc.Name,
		Address: doc.Address,
		Active:  doc.Active,
		Assets:  assets,
	}
}

// StableAssets filters all markets for assets whose display name starts with
// prefix, excluding the legacy token that shares it. Output order follows
// market order, then asset order within each market, so identical upstream
// data always yields the same listing.
func (a *Aggregator) StableAssets(ctx context.Context, prefix, excludedAssetID string) ([]model.PoolInfo, []string, error) {
	markets, warnings, err := a.Markets(ctx)
	if err != nil {
		return nil, warnings, err
	}
	var pools []model.PoolInfo
	for _, market := range markets {
		for _, asset := range market.Assets {
			if !strings.HasPrefix(asset.Name, prefix) || asset.AssetID == excludedAssetID {
				continue
			}
			pools = append(pools, model.PoolInfo{
				MarketIndex:   market.Index,
				MarketName:    market.Name,
				MarketAddress: market.Address,
				AssetID:       asset.AssetID,
				AssetName:     asset.Name,
				Decimals:      asset.Decimals,
				SupplyAPY:     amounts.ScaleAPY(asset.SupplyAPY, asset.APYDecimals),
				TotalSupply:   amounts.FromBase(asset.Supply, asset.Decimals).String(),
			})
		}
	}
	return pools, warnings, nil
}
