package lend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/puzzlend/puzzlend/internal/amounts"
	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/model"
	"github.com/puzzlend/puzzlend/internal/node"
	"github.com/puzzlend/puzzlend/internal/registry"
)

// Resolver answers balance and position questions for one wallet address.
// Display lookups degrade to zero on failure; the Require variants raise,
// because pre-checks must not mistake an outage for an empty wallet.
type Resolver struct {
	node *node.Client
	agg  *Aggregator
	log  *zap.Logger
}

func NewResolver(nodeClient *node.Client, agg *Aggregator, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{node: nodeClient, agg: agg, log: logger}
}

// NativeBalance returns the wallet's WAVES balance in human units, or zero
// when the lookup fails.
func (r *Resolver) NativeBalance(ctx context.Context, address string) decimal.Decimal {
	bal, err := r.RequireNativeBalance(ctx, address)
	if err != nil {
		r.log.Warn("native balance lookup failed, reporting zero",
			zap.String("address", address), zap.Error(err))
		return decimal.Zero
	}
	return bal
}

// RequireNativeBalance returns the wallet's WAVES balance in human units,
// raising on any lookup failure.
func (r *Resolver) RequireNativeBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	base, err := r.node.WavesBalance(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}
	return amounts.FromBase(base, amounts.NativeDecimals), nil
}

// TokenBalance returns the wallet's balance for one asset in human units, or
// zero when the lookup fails. The native sentinel routes to the WAVES
// balance endpoint.
func (r *Resolver) TokenBalance(ctx context.Context, address, assetID string) decimal.Decimal {
	bal, err := r.RequireTokenBalance(ctx, address, assetID)
	if err != nil {
		r.log.Warn("token balance lookup failed, reporting zero",
			zap.String("address", address), zap.String("asset", assetID), zap.Error(err))
		return decimal.Zero
	}
	return bal
}

// RequireTokenBalance is the raising variant of TokenBalance.
func (r *Resolver) RequireTokenBalance(ctx context.Context, address, assetID string) (decimal.Decimal, error) {
	if assetID == registry.NativeAssetID {
		return r.RequireNativeBalance(ctx, address)
	}
	base, err := r.node.AssetBalance(ctx, address, assetID)
	if err != nil {
		return decimal.Zero, err
	}
	details, err := r.node.AssetDetails(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}
	return amounts.FromBase(base, details.Decimals), nil
}

// WalletAssetBalances lists the wallet's balance for every distinct asset
// appearing in the stable-pool listing. Assets appearing in several markets
// are queried once; individual lookup failures degrade to zero with a
// warning.
func (r *Resolver) WalletAssetBalances(ctx context.Context, address string) ([]model.TokenBalance, []string, error) {
	pools, warnings, err := r.agg.StableAssets(ctx, DefaultStablePrefix, LegacyUSDTAssetID)
	if err != nil {
		return nil, warnings, txerr.Wrap(txerr.CodeResolution, "list pool assets", err)
	}

	type assetKey struct{ id, name string }
	seen := make(map[assetKey]bool)
	var balances []model.TokenBalance
	for _, pool := range pools {
		key := assetKey{pool.AssetID, pool.AssetName}
		if seen[key] {
			continue
		}
		seen[key] = true
		base, err := r.node.AssetBalance(ctx, address, pool.AssetID)
		if err != nil {
			r.log.Warn("asset balance lookup failed, reporting zero",
				zap.String("asset", pool.AssetID), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("balance for %s unavailable: %v", pool.AssetName, err))
			base = 0
		}
		var categories []string
		if tok, ok := registry.Lookup(pool.AssetID); ok {
			categories = tok.Categories
		}
		balances = append(balances, model.TokenBalance{
			AssetID:    pool.AssetID,
			Name:       pool.AssetName,
			Balance:    amounts.FromBase(base, pool.Decimals).String(),
			Categories: categories,
		})
	}
	return balances, warnings, nil
}

type walletOpsDoc struct {
	Supplied    quantityDoc `json:"supplied"`
	SuppliedUSD quantityDoc `json:"suppliedUsd"`
}

// SuppliedPositions lists the wallet's nonzero supplied positions across all
// stable pools. Each pool is queried on its own market contract; per-pool
// failures are skipped with a warning.
func (r *Resolver) SuppliedPositions(ctx context.Context, address string) ([]model.WalletPosition, []string, error) {
	pools, warnings, err := r.agg.StableAssets(ctx, DefaultStablePrefix, LegacyUSDTAssetID)
	if err != nil {
		return nil, warnings, txerr.Wrap(txerr.CodeResolution, "list pool assets", err)
	}

	var positions []model.WalletPosition
	for _, pool := range pools {
		expr := fmt.Sprintf(`getWalletOperationsJson("%s", "%s")`, address, pool.AssetID)
		raw, err := r.node.EvaluateJSONString(ctx, pool.MarketAddress, expr)
		if err != nil {
			r.log.Warn("position lookup failed",
				zap.String("market", pool.MarketAddress),
				zap.String("asset", pool.AssetID), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("position in %s (%s) unavailable: %v", pool.MarketName, pool.AssetName, err))
			continue
		}
		var doc walletOpsDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			warnings = append(warnings, fmt.Sprintf("position in %s (%s) unreadable: %v", pool.MarketName, pool.AssetName, err))
			continue
		}
		if doc.Supplied.Value <= 0 {
			continue
		}
		positions = append(positions, model.WalletPosition{
			MarketName:    pool.MarketName,
			MarketAddress: pool.MarketAddress,
			AssetID:       pool.AssetID,
			AssetName:     pool.AssetName,
			Supplied:      amounts.FromBase(doc.Supplied.Value, doc.Supplied.Decimals).String(),
			SuppliedUSD:   amounts.FromBase(doc.SuppliedUSD.Value, doc.SuppliedUSD.Decimals).String(),
		})
	}
	return positions, warnings, nil
}

// SuppliedInPool returns the wallet's supplied human-unit amount in one pool.
// A missing or zero position reports found=false; lookup failures raise.
func (r *Resolver) SuppliedInPool(ctx context.Context, address string, pool model.PoolInfo) (decimal.Decimal, bool, error) {
	expr := fmt.Sprintf(`getWalletOperationsJson("%s", "%s")`, address, pool.AssetID)
	raw, err := r.node.EvaluateJSONString(ctx, pool.MarketAddress, expr)
	if err != nil {
		return decimal.Zero, false, err
	}
	var doc walletOpsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return decimal.Zero, false, txerr.Wrap(txerr.CodeMalformed, "decode wallet operations", err)
	}
	if doc.Supplied.Value <= 0 {
		return decimal.Zero, false, nil
	}
	return amounts.FromBase(doc.Supplied.Value, doc.Supplied.Decimals), true, nil
}
