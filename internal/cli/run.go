package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zheny5/gopatterns/pkg/patterns/catalog"
	"github.com/zheny5/gopatterns/pkg/patterns/config"
	"github.com/zheny5/gopatterns/pkg/patterns/history"
	"github.com/zheny5/gopatterns/pkg/patterns/observability"
)

func newRunCmd() *cobra.Command {
	var flagFamily string

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run pattern demos",
		Long: `Run the named demos, one family, or the whole catalogue.

With no arguments every registered demo runs in catalogue order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(flagConfig)
			if err != nil {
				return err
			}

			store, err := buildStore(cfg.Sub("history"))
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			cat := catalog.Build(catalog.BuildOptions{History: store})

			names := args
			if flagFamily != "" {
				if len(args) > 0 {
					return fmt.Errorf("--family cannot be combined with demo names")
				}
				demos := cat.ByFamily(catalog.Family(flagFamily))
				if len(demos) == 0 {
					return fmt.Errorf("unknown family %q", flagFamily)
				}
				for _, d := range demos {
					names = append(names, d.Name)
				}
			}

			runner := catalog.NewRunner(cat, runnerOptions(cmd, cfg)...)
			return runner.Run(cmd.Context(), names...)
		},
	}

	cmd.Flags().StringVar(&flagFamily, "family", "", "run one family: creational, structural, or behavioral")
	return cmd
}

// buildStore creates the history store the memento demo persists to.
// Nil means the catalog supplies its own in-memory store.
func buildStore(cfg config.Config) (history.Store, error) {
	switch backend := cfg.String("backend", "memory"); backend {
	case "memory", "":
		return nil, nil
	case "sqlite":
		store, err := history.NewSQLiteStore(cfg.String("path", "patterns.db"))
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

// runnerOptions assembles runner options from flags and config.
func runnerOptions(cmd *cobra.Command, cfg config.Config) []catalog.RunnerOption {
	opts := []catalog.RunnerOption{
		catalog.WithOutput(cmd.OutOrStdout()),
	}

	if flagVerbose {
		opts = append(opts, catalog.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	obs := cfg.Sub("observability")
	if obs.Bool("metrics", false) {
		opts = append(opts, catalog.WithMetrics(observability.NewMetricsRecorder()))
	}
	if obs.Bool("tracing", false) {
		opts = append(opts, catalog.WithSpans(observability.NewSpanManager()))
	}
	return opts
}
