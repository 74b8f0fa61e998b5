// Package app wires the command tree: flag parsing, configuration, client
// construction, and envelope emission around the lend, swap, and tx packages.
package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/puzzlend/puzzlend/internal/config"
	txerr "github.com/puzzlend/puzzlend/internal/errors"
	"github.com/puzzlend/puzzlend/internal/httpx"
	"github.com/puzzlend/puzzlend/internal/lend"
	"github.com/puzzlend/puzzlend/internal/model"
	"github.com/puzzlend/puzzlend/internal/node"
	"github.com/puzzlend/puzzlend/internal/out"
	"github.com/puzzlend/puzzlend/internal/swap"
	"github.com/puzzlend/puzzlend/internal/tx"
	"github.com/puzzlend/puzzlend/internal/version"
)

type Runner struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

func NewRunner() *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr)
}

func NewRunnerWithWriters(stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
	}
}

type runtimeState struct {
	runner       *Runner
	flags        config.GlobalFlags
	settings     config.Settings
	root         *cobra.Command
	log          *zap.Logger
	lastCommand  string
	lastWarnings []string
	lastPartial  bool

	node     *node.Client
	markets  *lend.Aggregator
	resolver *lend.Resolver
	quotes   *swap.Client
}

func (r *Runner) Run(args []string) int {
	state := &runtimeState{runner: r}
	root := state.newRootCommand()
	state.root = root
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.Execute()
	err = normalizeRunError(err)
	if state.log != nil {
		_ = state.log.Sync()
	}
	if err == nil {
		return 0
	}
	state.renderError(err)
	return txerr.ExitCode(err)
}

func (s *runtimeState) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   version.CLIName,
		Short: "Agent-first toolkit for Puzzle Lend on Waves",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			settings, err := config.Load(s.flags)
			if err != nil {
				return txerr.Wrap(txerr.CodeUsage, "load configuration", err)
			}
			s.settings = settings
			s.lastCommand = trimRootPath(cmd.CommandPath())
			s.log = newLogger(s.runner.stderr, settings.Verbose)

			if s.node == nil {
				httpClient := httpx.New(settings.Timeout, settings.Retries)
				s.node = node.New(httpClient, settings.NodeURL)
				s.markets = lend.NewAggregator(s.node, settings.OracleAddress, s.log)
				s.resolver = lend.NewResolver(s.node, s.markets, s.log)
				s.quotes = swap.New(httpClient, settings.QuoteBaseURL)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return txerr.Wrap(txerr.CodeUsage, "parse flags", err)
	})

	cmd.PersistentFlags().BoolVar(&s.flags.JSON, "json", false, "Output JSON (default)")
	cmd.PersistentFlags().BoolVar(&s.flags.Plain, "plain", false, "Output plain text")
	cmd.PersistentFlags().StringVar(&s.flags.Select, "select", "", "Select fields from data (comma-separated)")
	cmd.PersistentFlags().BoolVar(&s.flags.ResultsOnly, "results-only", false, "Output only data payload")
	cmd.PersistentFlags().StringVar(&s.flags.Timeout, "timeout", "", "Node request timeout")
	cmd.PersistentFlags().IntVar(&s.flags.Retries, "retries", -1, "Retries per node request")
	cmd.PersistentFlags().StringVar(&s.flags.Node, "node", "", "Waves node REST URL")
	cmd.PersistentFlags().StringVar(&s.flags.Chain, "chain", "", "Chain (mainnet|testnet)")
	cmd.PersistentFlags().StringVar(&s.flags.Oracle, "oracle", "", "Puzzle Lend oracle contract address")
	cmd.PersistentFlags().StringVar(&s.flags.Aggregator, "aggregator", "", "Puzzle Swap aggregator dApp address")
	cmd.PersistentFlags().StringVar(&s.flags.QuoteURL, "quote-url", "", "Swap quote API base URL")
	cmd.PersistentFlags().StringVar(&s.flags.Address, "address", "", "Wallet address for read-only queries")
	cmd.PersistentFlags().BoolVar(&s.flags.Verbose, "verbose", false, "Log request details to stderr")
	cmd.PersistentFlags().StringVar(&s.flags.ConfigPath, "config", "", "Path to config file")

	cmd.AddCommand(s.newPoolsCommand())
	cmd.AddCommand(s.newWalletCommand())
	cmd.AddCommand(s.newLendCommand())
	cmd.AddCommand(s.newTransferCommand())
	cmd.AddCommand(s.newSwapCommand())
	cmd.AddCommand(s.newEvaluateCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			if long {
				cmd.Println(version.Long())
				return
			}
			cmd.Println(version.CLIVersion)
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "Print extended build metadata")
	return cmd
}

type fetchFn func(ctx context.Context) (data any, warnings []string, partial bool, err error)

func (s *runtimeState) runCommand(commandPath string, fetch fetchFn) error {
	s.lastWarnings = nil
	s.lastPartial = false

	ctx, cancel := context.WithTimeout(context.Background(), s.settings.Timeout)
	defer cancel()
	data, warnings, partial, err := fetch(ctx)
	s.lastWarnings = warnings
	s.lastPartial = partial
	if err != nil {
		return err
	}
	return s.emitSuccess(commandPath, data, warnings, partial)
}

func (s *runtimeState) emitSuccess(commandPath string, data any, warnings []string, partial bool) error {
	env := model.Envelope{
		Version:  model.EnvelopeVersion,
		Success:  true,
		Data:     data,
		Error:    nil,
		Warnings: warnings,
		Meta: model.EnvelopeMeta{
			RequestID: newRequestID(),
			Timestamp: s.runner.now().UTC(),
			Command:   commandPath,
			Partial:   partial,
		},
	}
	return out.Render(s.runner.stdout, env, s.settings)
}

func (s *runtimeState) renderError(err error) {
	commandPath := s.lastCommand
	if commandPath == "" {
		commandPath = version.CLIName
	}
	code := txerr.CodeInternal
	message := err.Error()
	if tErr, ok := txerr.As(err); ok {
		code = tErr.Code
	}

	settings := s.settings
	if settings.OutputMode == "" {
		settings.OutputMode = "json"
	}
	settings.ResultsOnly = false
	settings.SelectFields = nil
	env := model.Envelope{
		Version: model.EnvelopeVersion,
		Success: false,
		Data:    []any{},
		Error: &model.ErrorBody{
			Code:    int(code),
			Type:    txerr.TypeString(code),
			Message: message,
		},
		Warnings: s.lastWarnings,
		Meta: model.EnvelopeMeta{
			RequestID: newRequestID(),
			Timestamp: s.runner.now().UTC(),
			Command:   commandPath,
			Partial:   s.lastPartial,
		},
	}
	_ = out.Render(s.runner.stderr, env, settings)
}

// newSigner builds the signing identity from configuration. Read-only
// commands never call this, so a missing key only fails mutating commands.
func (s *runtimeState) newSigner() (*tx.Signer, error) {
	return tx.NewSigner(s.settings.PrivateKey, tx.SchemeFromChain(s.settings.Chain))
}

// walletAddress picks the query address: an explicit override wins, then the
// address derived from the signing key.
func (s *runtimeState) walletAddress() (string, error) {
	if addr := strings.TrimSpace(s.settings.WalletAddress); addr != "" {
		return addr, nil
	}
	signer, err := s.newSigner()
	if err != nil {
		return "", txerr.New(txerr.CodeUsage, "wallet address required: pass --address or configure a signing key")
	}
	return signer.Address(), nil
}

func (s *runtimeState) newBuilder() (*tx.Builder, error) {
	signer, err := s.newSigner()
	if err != nil {
		return nil, err
	}
	return tx.NewBuilder(s.node, s.markets, s.resolver, s.quotes, signer,
		s.settings.AggregatorAddress, s.log), nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func newRequestID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func trimRootPath(path string) string {
	parts := strings.Fields(path)
	if len(parts) <= 1 {
		return path
	}
	return strings.Join(parts[1:], " ")
}

func normalizeRunError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := txerr.As(err); ok {
		return err
	}
	if isLikelyUsageError(err) {
		return txerr.Wrap(txerr.CodeUsage, "invalid command input", err)
	}
	return txerr.Wrap(txerr.CodeInternal, "execute command", err)
}

func isLikelyUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	patterns := []string{
		"unknown command",
		"unknown flag",
		"required flag(s)",
		"flag needs an argument",
		"requires at least",
		"requires exactly",
		"accepts ",
		"invalid argument",
		"invalid args",
	}
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
