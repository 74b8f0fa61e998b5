package app

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/model"
)

func parseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, txerr.Wrap(txerr.CodeUsage, "parse amount", err)
	}
	return amount, nil
}

// emitResult emits a transaction outcome. A node rejection is a successful
// command run with success=false in the payload, not a CLI failure.
func (s *runtimeState) emitResult(commandPath string, result model.TransactionResult) error {
	var warnings []string
	if !result.Success {
		warnings = append(warnings, "transaction rejected by node: "+result.Error)
	}
	return s.emitSuccess(commandPath, result, warnings, false)
}

func (s *runtimeState) newLendCommand() *cobra.Command {
	root := &cobra.Command{Use: "lend", Short: "Lending actions"}

	var supplyToken, supplyAmount string
	supplyCmd := &cobra.Command{
		Use:   "supply",
		Short: "Supply an asset to its lending pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(supplyAmount)
			if err != nil {
				return err
			}
			builder, err := s.newBuilder()
			if err != nil {
				return err
			}
			path := trimRootPath(cmd.CommandPath())
			s.lastCommand = path
			ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
			defer cancel()
			result, err := builder.Supply(ctx, supplyToken, amount)
			if err != nil {
				return err
			}
			return s.emitResult(path, result)
		},
	}
	supplyCmd.Flags().StringVar(&supplyToken, "token", "", "Token name or asset id")
	supplyCmd.Flags().StringVar(&supplyAmount, "amount", "", "Amount in token units")
	_ = supplyCmd.MarkFlagRequired("token")
	_ = supplyCmd.MarkFlagRequired("amount")
	root.AddCommand(supplyCmd)

	var withdrawToken, withdrawAmount string
	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw a supplied asset from its lending pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(withdrawAmount)
			if err != nil {
				return err
			}
			builder, err := s.newBuilder()
			if err != nil {
				return err
			}
			path := trimRootPath(cmd.CommandPath())
			s.lastCommand = path
			ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
			defer cancel()
			result, err := builder.Withdraw(ctx, withdrawToken, amount)
			if err != nil {
				return err
			}
			return s.emitResult(path, result)
		},
	}
	withdrawCmd.Flags().StringVar(&withdrawToken, "token", "", "Token name or asset id")
	withdrawCmd.Flags().StringVar(&withdrawAmount, "amount", "", "Amount in token units")
	_ = withdrawCmd.MarkFlagRequired("token")
	_ = withdrawCmd.MarkFlagRequired("amount")
	root.AddCommand(withdrawCmd)

	return root
}

func (s *runtimeState) newTransferCommand() *cobra.Command {
	var recipient, token, amountArg, attachment string
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer tokens to another address",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountArg)
			if err != nil {
				return err
			}
			builder, err := s.newBuilder()
			if err != nil {
				return err
			}
			path := trimRootPath(cmd.CommandPath())
			s.lastCommand = path
			ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
			defer cancel()
			result, err := builder.Transfer(ctx, recipient, token, amount, attachment)
			if err != nil {
				return err
			}
			return s.emitResult(path, result)
		},
	}
	cmd.Flags().StringVar(&recipient, "to", "", "Recipient address")
	cmd.Flags().StringVar(&token, "token", "WAVES", "Token name or asset id")
	cmd.Flags().StringVar(&amountArg, "amount", "", "Amount in token units")
	cmd.Flags().StringVar(&attachment, "attachment", "", "Optional transfer attachment")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (s *runtimeState) newSwapCommand() *cobra.Command {
	var fromToken, toToken, amountArg string
	var maxSlippage float64
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap tokens through the aggregator",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountArg)
			if err != nil {
				return err
			}
			builder, err := s.newBuilder()
			if err != nil {
				return err
			}
			path := trimRootPath(cmd.CommandPath())
			s.lastCommand = path
			ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
			defer cancel()
			result, err := builder.Swap(ctx, fromToken, toToken, amount, maxSlippage)
			if err != nil {
				return err
			}
			return s.emitResult(path, result)
		},
	}
	cmd.Flags().StringVar(&fromToken, "from", "", "Input token name or asset id")
	cmd.Flags().StringVar(&toToken, "to", "", "Output token name or asset id")
	cmd.Flags().StringVar(&amountArg, "amount", "", "Amount of input token in token units")
	cmd.Flags().Float64Var(&maxSlippage, "max-slippage", 1.0, "Maximum slippage percent")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
