package tx

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wavesplatform/gowaves/pkg/proto"
	"go.uber.org/zap"

	"github.com/puzzlend/puzzlend/internal/amounts"
	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/lend"
	"github.com/puzzlend/puzzlend/internal/model"
	"github.com/puzzlend/puzzlend/internal/node"
	"github.com/puzzlend/puzzlend/internal/registry"
	"github.com/puzzlend/puzzlend/internal/swap"
)

const (
	// TransferFee is the flat base-unit fee for asset transfers.
	TransferFee = 100_000

	// InvokeFee is the flat base-unit fee for dApp invocations.
	InvokeFee = 500_000

	invokeVersion   = 2
	transferVersion = 2
)

// Builder turns operation requests into signed, broadcast transactions.
type Builder struct {
	node       *node.Client
	markets    *lend.Aggregator
	resolver   *lend.Resolver
	quotes     *swap.Client
	signer     *Signer
	aggregator string
	log        *zap.Logger
}

func NewBuilder(nodeClient *node.Client, markets *lend.Aggregator, resolver *lend.Resolver, quotes *swap.Client, signer *Signer, aggregatorAddress string, logger *zap.Logger) *Builder {
	if aggregatorAddress == "" {
		aggregatorAddress = swap.DefaultAggregatorAddress
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		node:       nodeClient,
		markets:    markets,
		resolver:   resolver,
		quotes:     quotes,
		signer:     signer,
		aggregator: aggregatorAddress,
		log:        logger,
	}
}

func resolveToken(nameOrID string) (string, error) {
	assetID, ok := registry.Resolve(nameOrID)
	if !ok {
		return "", txerr.Newf(txerr.CodeResolution, "unknown token %q", nameOrID)
	}
	return assetID, nil
}

// tokenName returns the registry display name, falling back to the id for
// assets outside the static table.
func tokenName(assetID string) string {
	if tok, ok := registry.Lookup(assetID); ok {
		return tok.Name
	}
	return assetID
}

func (b *Builder) findPool(ctx context.Context, assetID string) (model.PoolInfo, error) {
	pools, _, err := b.markets.StableAssets(ctx, lend.DefaultStablePrefix, lend.LegacyUSDTAssetID)
	if err != nil {
		return model.PoolInfo{}, err
	}
	for _, pool := range pools {
		if pool.AssetID == assetID {
			return pool, nil
		}
	}
	return model.PoolInfo{}, txerr.Newf(txerr.CodeResolution, "asset %s is not in any lending pool", assetID)
}

func (b *Builder) assetDecimals(ctx context.Context, assetID string) (int, error) {
	if assetID == registry.NativeAssetID {
		return amounts.NativeDecimals, nil
	}
	details, err := b.node.AssetDetails(ctx, assetID)
	if err != nil {
		return 0, err
	}
	return details.Decimals, nil
}

// requireFeeReserve verifies the wallet can pay the flat WAVES fee.
// Operations that spend native tokens fold the fee into their own balance
// check instead.
func (b *Builder) requireFeeReserve(ctx context.Context, feeBase int64) error {
	balance, err := b.resolver.RequireNativeBalance(ctx, b.signer.Address())
	if err != nil {
		return err
	}
	needed := amounts.FromBase(feeBase, amounts.NativeDecimals)
	if balance.LessThan(needed) {
		return txerr.Newf(txerr.CodeInsufficientBalance,
			"wallet holds %s WAVES, need %s to cover the fee", balance, needed)
	}
	return nil
}

func optionalAsset(assetID string) (proto.OptionalAsset, error) {
	if assetID == registry.NativeAssetID {
		return proto.NewOptionalAssetWaves(), nil
	}
	asset, err := proto.NewOptionalAssetFromString(assetID)
	if err != nil {
		return proto.OptionalAsset{}, txerr.Wrap(txerr.CodeUsage, "invalid asset identifier", err)
	}
	return *asset, nil
}

func now() uint64 { return uint64(time.Now().UnixMilli()) }

// Supply deposits amount of a pool asset into its lending market. The amount
// is floored to whole tokens; wallet balance and fee reserve are checked
// before signing.
func (b *Builder) Supply(ctx context.Context, token string, amount decimal.Decimal) (model.TransactionResult, error) {
	amount = amounts.FloorWhole(amount)
	if !amount.IsPositive() {
		return model.TransactionResult{}, txerr.New(txerr.CodeUsage, "amount must be at least one whole token")
	}
	assetID, err := resolveToken(token)
	if err != nil {
		return model.TransactionResult{}, err
	}
	pool, err := b.findPool(ctx, assetID)
	if err != nil {
		return model.TransactionResult{}, err
	}
	// Listed pool assets are tokens today; the native branch keeps the
	// amount-plus-fee check correct should a native pool ever appear.
	required := amount
	if assetID == registry.NativeAssetID {
		required = amount.Add(amounts.FromBase(InvokeFee, amounts.NativeDecimals))
	} else if err := b.requireFeeReserve(ctx, InvokeFee); err != nil {
		return model.TransactionResult{}, err
	}
	balance, err := b.resolver.RequireTokenBalance(ctx, b.signer.Address(), assetID)
	if err != nil {
		return model.TransactionResult{}, err
	}
	if balance.LessThan(required) {
		return model.TransactionResult{}, txerr.Newf(txerr.CodeInsufficientBalance,
			"wallet holds %s %s, need %s", balance, pool.AssetName, required)
	}

	payment, err := b.payment(assetID, amount, pool.Decimals)
	if err != nil {
		return model.TransactionResult{}, err
	}
	call := proto.NewFunctionCall("supply", proto.Arguments{})
	return b.invoke(ctx, pool.MarketAddress, call, proto.ScriptPayments{payment}, "supply", map[string]any{
		"market": pool.MarketName,
		"asset":  pool.AssetName,
		"amount": amount.String(),
	})
}

// Withdraw removes amount of a pool asset from its lending market. The
// amount is floored to whole tokens, matching Supply; the supplied position
// is checked before signing.
func (b *Builder) Withdraw(ctx context.Context, token string, amount decimal.Decimal) (model.TransactionResult, error) {
	amount = amounts.FloorWhole(amount)
	if !amount.IsPositive() {
		return model.TransactionResult{}, txerr.New(txerr.CodeUsage, "amount must be at least one whole token")
	}
	assetID, err := resolveToken(token)
	if err != nil {
		return model.TransactionResult{}, err
	}
	pool, err := b.findPool(ctx, assetID)
	if err != nil {
		return model.TransactionResult{}, err
	}
	if err := b.requireFeeReserve(ctx, InvokeFee); err != nil {
		return model.TransactionResult{}, err
	}
	supplied, found, err := b.resolver.SuppliedInPool(ctx, b.signer.Address(), pool)
	if err != nil {
		return model.TransactionResult{}, err
	}
	if !found {
		return model.TransactionResult{}, txerr.Newf(txerr.CodePositionNotFound,
			"no supplied position in %s for %s", pool.MarketName, pool.AssetName)
	}
	if supplied.LessThan(amount) {
		return model.TransactionResult{}, txerr.Newf(txerr.CodeInsufficientSupplied,
			"supplied %s %s, need %s", supplied, pool.AssetName, amount)
	}

	base, err := amounts.ToBase(amount, pool.Decimals)
	if err != nil {
		return model.TransactionResult{}, err
	}
	call := proto.NewFunctionCall("withdraw", proto.Arguments{
		proto.NewStringArgument(assetID),
		proto.NewIntegerArgument(base),
	})
	return b.invoke(ctx, pool.MarketAddress, call, proto.ScriptPayments{}, "withdraw", map[string]any{
		"market": pool.MarketName,
		"asset":  pool.AssetName,
		"amount": amount.String(),
	})
}

// Transfer sends amount of any token, native included, to a recipient
// address.
func (b *Builder) Transfer(ctx context.Context, recipient, token string, amount decimal.Decimal, attachment string) (model.TransactionResult, error) {
	if !amount.IsPositive() {
		return model.TransactionResult{}, txerr.New(txerr.CodeUsage, "amount must be positive")
	}
	assetID, err := resolveToken(token)
	if err != nil {
		return model.TransactionResult{}, err
	}
	decimals, err := b.assetDecimals(ctx, assetID)
	if err != nil {
		return model.TransactionResult{}, err
	}
	required := amount
	if assetID == registry.NativeAssetID {
		required = amount.Add(amounts.FromBase(TransferFee, amounts.NativeDecimals))
	} else if err := b.requireFeeReserve(ctx, TransferFee); err != nil {
		return model.TransactionResult{}, err
	}
	balance, err := b.resolver.RequireTokenBalance(ctx, b.signer.Address(), assetID)
	if err != nil {
		return model.TransactionResult{}, err
	}
	if balance.LessThan(required) {
		return model.TransactionResult{}, txerr.Newf(txerr.CodeInsufficientBalance,
			"wallet holds %s, need %s", balance, required)
	}

	base, err := amounts.ToBase(amount, decimals)
	if err != nil {
		return model.TransactionResult{}, err
	}
	asset, err := optionalAsset(assetID)
	if err != nil {
		return model.TransactionResult{}, err
	}
	rcpt, err := proto.NewRecipientFromString(recipient)
	if err != nil {
		return model.TransactionResult{}, txerr.Wrap(txerr.CodeUsage, "invalid recipient address", err)
	}

	transfer := proto.NewUnsignedTransferWithProofs(transferVersion, b.signer.PublicKey(),
		asset, proto.NewOptionalAssetWaves(), now(), uint64(base), TransferFee, rcpt,
		proto.Attachment(attachment))
	if err := transfer.Sign(b.signer.Scheme(), b.signer.secret); err != nil {
		return model.TransactionResult{}, txerr.Wrap(txerr.CodeInternal, "sign transfer", err)
	}

	result := model.TransactionResult{
		Operation: "transfer",
		FeeWaves:  amounts.FromBase(TransferFee, amounts.NativeDecimals).String(),
		Context: map[string]any{
			"recipient": recipient,
			"asset_id":  assetID,
			"amount":    amount.String(),
		},
	}
	return b.broadcast(ctx, transfer, result)
}

// Swap exchanges amountIn of one token for another through the aggregator
// dApp, bounding the accepted output by the slippage limit.
func (b *Builder) Swap(ctx context.Context, fromToken, toToken string, amountIn decimal.Decimal, maxSlippagePct float64) (model.TransactionResult, error) {
	if !amountIn.IsPositive() {
		return model.TransactionResult{}, txerr.New(txerr.CodeUsage, "amount must be positive")
	}
	if maxSlippagePct < 0 || maxSlippagePct >= 100 {
		return model.TransactionResult{}, txerr.New(txerr.CodeUsage, "slippage must be in [0, 100)")
	}
	assetIn, err := resolveToken(fromToken)
	if err != nil {
		return model.TransactionResult{}, err
	}
	assetOut, err := resolveToken(toToken)
	if err != nil {
		return model.TransactionResult{}, err
	}
	decimalsIn, err := b.assetDecimals(ctx, assetIn)
	if err != nil {
		return model.TransactionResult{}, err
	}
	requiredIn := amountIn
	if assetIn == registry.NativeAssetID {
		requiredIn = amountIn.Add(amounts.FromBase(InvokeFee, amounts.NativeDecimals))
	} else if err := b.requireFeeReserve(ctx, InvokeFee); err != nil {
		return model.TransactionResult{}, err
	}
	balance, err := b.resolver.RequireTokenBalance(ctx, b.signer.Address(), assetIn)
	if err != nil {
		return model.TransactionResult{}, err
	}
	if balance.LessThan(requiredIn) {
		return model.TransactionResult{}, txerr.Newf(txerr.CodeInsufficientBalance,
			"wallet holds %s, need %s", balance, requiredIn)
	}

	baseIn, err := amounts.ToBase(amountIn, decimalsIn)
	if err != nil {
		return model.TransactionResult{}, err
	}
	quote, err := b.quotes.Calc(ctx, assetIn, assetOut, baseIn)
	if err != nil {
		return model.TransactionResult{}, err
	}
	minOut := amounts.MinOutput(quote.EstimatedOut, maxSlippagePct)
	decimalsOut, err := b.assetDecimals(ctx, assetOut)
	if err != nil {
		return model.TransactionResult{}, err
	}

	payment, err := b.payment(assetIn, amountIn, decimalsIn)
	if err != nil {
		return model.TransactionResult{}, err
	}
	call := proto.NewFunctionCall("swap", proto.Arguments{
		proto.NewStringArgument(quote.Parameters),
		proto.NewIntegerArgument(minOut),
	})
	return b.invoke(ctx, b.aggregator, call, proto.ScriptPayments{payment}, "swap", map[string]any{
		"asset_in":      assetIn,
		"asset_out":     assetOut,
		"token_in":      tokenName(assetIn),
		"token_out":     tokenName(assetOut),
		"amount_in":     amountIn.String(),
		"estimated_out": amounts.FromBase(quote.EstimatedOut, decimalsOut).String(),
		"min_out":       minOut,
		"price_impact":  quote.PriceImpact,
	})
}

func (b *Builder) payment(assetID string, amount decimal.Decimal, decimals int) (proto.ScriptPayment, error) {
	base, err := amounts.ToBase(amount, decimals)
	if err != nil {
		return proto.ScriptPayment{}, err
	}
	asset, err := optionalAsset(assetID)
	if err != nil {
		return proto.ScriptPayment{}, err
	}
	return proto.ScriptPayment{Asset: asset, Amount: uint64(base)}, nil
}

func (b *Builder) invoke(ctx context.Context, dApp string, call proto.FunctionCall, payments proto.ScriptPayments, operation string, opCtx map[string]any) (model.TransactionResult, error) {
	rcpt, err := proto.NewRecipientFromString(dApp)
	if err != nil {
		return model.TransactionResult{}, txerr.Wrap(txerr.CodeUsage, "invalid dApp address", err)
	}
	inv := proto.NewUnsignedInvokeScriptWithProofs(invokeVersion,
		b.signer.PublicKey(), rcpt, call, payments, proto.NewOptionalAssetWaves(),
		InvokeFee, now())
	if err := inv.Sign(b.signer.Scheme(), b.signer.secret); err != nil {
		return model.TransactionResult{}, txerr.Wrap(txerr.CodeInternal, "sign invocation", err)
	}

	result := model.TransactionResult{
		Operation: operation,
		DApp:      dApp,
		Function:  call.Name(),
		FeeWaves:  amounts.FromBase(InvokeFee, amounts.NativeDecimals).String(),
		Context:   opCtx,
	}
	return b.broadcast(ctx, inv, result)
}

// broadcast submits a signed transaction and folds the node's verdict into
// the result. A node rejection fills Error and leaves Success false; only
// transport and decode failures propagate as errors.
func (b *Builder) broadcast(ctx context.Context, signedTx any, result model.TransactionResult) (model.TransactionResult, error) {
	verdict, err := b.node.Broadcast(ctx, signedTx)
	if err != nil {
		return model.TransactionResult{}, err
	}
	if !verdict.Accepted {
		b.log.Warn("transaction rejected",
			zap.String("operation", result.Operation), zap.String("reason", verdict.Message))
		result.Error = verdict.Message
		return result, nil
	}
	result.Success = true
	result.TransactionID = verdict.TxID
	b.log.Info("transaction accepted",
		zap.String("operation", result.Operation), zap.String("tx_id", verdict.TxID))
	return result, nil
}
