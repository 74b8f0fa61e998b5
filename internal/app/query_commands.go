package app

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/lend"
	"github.com/puzzlend/puzzlend/internal/model"
	"github.com/puzzlend/puzzlend/internal/registry"
)

func (s *runtimeState) newPoolsCommand() *cobra.Command {
	root := &cobra.Command{Use: "pools", Short: "Lending pool data"}

	var prefix string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stable lending pools with supply APY",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runCommand(trimRootPath(cmd.CommandPath()), func(ctx context.Context) (any, []string, bool, error) {
				pools, warnings, err := s.markets.StableAssets(ctx, prefix, lend.LegacyUSDTAssetID)
				return pools, warnings, len(warnings) > 0, err
			})
		},
	}
	listCmd.Flags().StringVar(&prefix, "prefix", lend.DefaultStablePrefix, "Asset name prefix filter")
	root.AddCommand(listCmd)

	marketsCmd := &cobra.Command{
		Use:   "markets",
		Short: "List raw lending markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runCommand(trimRootPath(cmd.CommandPath()), func(ctx context.Context) (any, []string, bool, error) {
				markets, warnings, err := s.markets.Markets(ctx)
				return markets, warnings, len(warnings) > 0, err
			})
		},
	}
	root.AddCommand(marketsCmd)

	return root
}

func (s *runtimeState) newWalletCommand() *cobra.Command {
	root := &cobra.Command{Use: "wallet", Short: "Wallet balances and positions"}

	var token string
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show native or single-token balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := s.walletAddress()
			if err != nil {
				return err
			}
			return s.runCommand(trimRootPath(cmd.CommandPath()), func(ctx context.Context) (any, []string, bool, error) {
				if strings.TrimSpace(token) == "" {
					bal := s.resolver.NativeBalance(ctx, address)
					return model.NativeBalance{
						Address: address,
						Balance: bal.String(),
						Symbol:  registry.NativeAssetID,
					}, nil, false, nil
				}
				assetID, ok := registry.Resolve(token)
				if !ok {
					return nil, nil, false, txerr.Newf(txerr.CodeResolution, "unknown token %q", token)
				}
				bal := s.resolver.TokenBalance(ctx, address, assetID)
				name := token
				var categories []string
				if tok, ok := registry.Lookup(assetID); ok {
					name = tok.Name
					categories = tok.Categories
				}
				return model.TokenBalance{
					AssetID:    assetID,
					Name:       name,
					Balance:    bal.String(),
					Categories: categories,
				}, nil, false, nil
			})
		},
	}
	balanceCmd.Flags().StringVar(&token, "token", "", "Token name or asset id (default: native WAVES)")
	root.AddCommand(balanceCmd)

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show balances for every stable-pool asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := s.walletAddress()
			if err != nil {
				return err
			}
			return s.runCommand(trimRootPath(cmd.CommandPath()), func(ctx context.Context) (any, []string, bool, error) {
				balances, warnings, err := s.resolver.WalletAssetBalances(ctx, address)
				return balances, warnings, len(warnings) > 0, err
			})
		},
	}
	root.AddCommand(tokensCmd)

	positionsCmd := &cobra.Command{
		Use:   "positions",
		Short: "Show supplied lending positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := s.walletAddress()
			if err != nil {
				return err
			}
			return s.runCommand(trimRootPath(cmd.CommandPath()), func(ctx context.Context) (any, []string, bool, error) {
				positions, warnings, err := s.resolver.SuppliedPositions(ctx, address)
				return positions, warnings, len(warnings) > 0, err
			})
		},
	}
	root.AddCommand(positionsCmd)

	return root
}

func (s *runtimeState) newEvaluateCommand() *cobra.Command {
	var contract, expr string
	var jsonString bool
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run a read-only expression against a dApp",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(contract) == "" || strings.TrimSpace(expr) == "" {
				return txerr.New(txerr.CodeUsage, "--contract and --expr are required")
			}
			return s.runCommand(trimRootPath(cmd.CommandPath()), func(ctx context.Context) (any, []string, bool, error) {
				if jsonString {
					raw, err := s.node.EvaluateJSONString(ctx, contract, expr)
					return raw, nil, false, err
				}
				raw, err := s.node.Evaluate(ctx, contract, expr)
				return raw, nil, false, err
			})
		},
	}
	cmd.Flags().StringVar(&contract, "contract", "", "dApp address")
	cmd.Flags().StringVar(&expr, "expr", "", "Expression to evaluate")
	cmd.Flags().BoolVar(&jsonString, "json-string", false, "Decode the result as a JSON-encoded string")
	_ = cmd.MarkFlagRequired("contract")
	_ = cmd.MarkFlagRequired("expr")
	return cmd
}
