package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/config"
	"github.com/goran-ethernal/RangeIndexor/internal/coordinator"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/headtracker"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/metrics"
	"github.com/goran-ethernal/RangeIndexor/internal/migrations"
	"github.com/goran-ethernal/RangeIndexor/internal/rangestore"
	"github.com/goran-ethernal/RangeIndexor/internal/rpc"
	"github.com/goran-ethernal/RangeIndexor/internal/runner"
	"github.com/goran-ethernal/RangeIndexor/pkg/api"
	pkgconfig "github.com/goran-ethernal/RangeIndexor/pkg/config"
	pkgcoordinator "github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/strategy"

	// built-in strategies
	_ "github.com/goran-ethernal/RangeIndexor/internal/strategies/erc20"
	_ "github.com/goran-ethernal/RangeIndexor/internal/strategies/eventlog"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║          RangeIndexor v%s              ║
║   Strategy-Scoped Block-Range Indexing    ║
╚═══════════════════════════════════════════╝
`
)

var (
	configPath string
	envFiles   []string

	apiURL string
	apiKey string

	reindexFrom     uint64
	reindexTo       uint64
	reindexStrategy string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "indexer",
	Short: "RangeIndexor - strategy-scoped block-range indexing",
	Long: `RangeIndexor walks the chain for a set of named strategies, keeping one
contiguous indexed range per strategy. Indexing can be paused, resumed and
reindexed over an authenticated HTTP API.`,
	Version: version,
	RunE:    runIndexer,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available strategy types",
	Long:  `List all registered strategy types that can be used in the configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available strategy types:")
		types := strategy.ListRegistered()
		if len(types) == 0 {
			fmt.Println("  (no strategies registered)")
			return
		}
		for _, t := range types {
			fmt.Printf("  - %s\n", t)
		}
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := jsonschema.Reflect(&pkgconfig.Config{})
		return printJSON(schema)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the indexing status of a running indexer",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := newAPIClient().Status(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(snapshot)
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause indexing at the next batch boundary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(newAPIClient().Pause(cmd.Context()))
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume paused indexing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(newAPIClient().Resume(cmd.Context()))
	},
}

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Reprocess a block range",
	Long: `Reprocess a block range for one strategy or for all of them.
Omitted bounds default to the stored start block and the current chain head.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pkgcoordinator.ReindexRequest
		if cmd.Flags().Changed("from") {
			req.From = &reindexFrom
		}
		if cmd.Flags().Changed("to") {
			req.To = &reindexTo
		}
		if cmd.Flags().Changed("strategy") {
			req.Strategy = &reindexStrategy
		}

		return runCommand(newAPIClient().Reindex(cmd.Context(), req))
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.Flags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "env files loaded before the configuration")

	for _, cmd := range []*cobra.Command{statusCmd, pauseCmd, resumeCmd, reindexCmd} {
		cmd.Flags().StringVar(&apiURL, "api-url", "http://localhost:3000", "base URL of the indexer API")
		cmd.Flags().StringVar(&apiKey, "api-key", os.Getenv(config.EnvAPIKey), "API key sent in the X-API-Key header")
	}

	reindexCmd.Flags().Uint64Var(&reindexFrom, "from", 0, "first block to reprocess")
	reindexCmd.Flags().Uint64Var(&reindexTo, "to", 0, "last block to reprocess")
	reindexCmd.Flags().StringVar(&reindexStrategy, "strategy", "", "strategy to reindex (default all)")

	rootCmd.AddCommand(listCmd, schemaCmd, statusCmd, pauseCmd, resumeCmd, reindexCmd)
}

func newAPIClient() *api.Client {
	return api.NewClient(apiURL, apiKey)
}

func runCommand(result pkgcoordinator.CommandResult, err error) error {
	if err != nil {
		return err
	}
	return printJSON(result)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runIndexer(cmd *cobra.Command, args []string) error {
	fmt.Printf(banner, version)

	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.NewComponentLoggerFromConfig(common.ComponentCoordinator, cfg.Logging)

	// Initialize database
	database, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	log.Info("Running database migrations...")
	if err := migrations.RunMigrations(log, database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	maintenance := db.NewMaintenance(
		database,
		cfg.Maintenance,
		logger.NewComponentLoggerFromConfig(common.ComponentMaintenance, cfg.Logging),
	)
	if err := maintenance.Start(ctx); err != nil {
		return fmt.Errorf("failed to start database maintenance: %w", err)
	}
	defer func() {
		if err := maintenance.Stop(); err != nil {
			log.Warnf("Failed to stop database maintenance: %v", err)
		}
	}()

	// Initialize RPC client
	log.Info("Connecting to Ethereum node...")
	ethClient, err := rpc.NewClient(ctx, cfg.Chain)
	if err != nil {
		return fmt.Errorf("failed to create RPC client: %w", err)
	}
	defer ethClient.Close()
	log.Infof("Connected to Ethereum node: %s", cfg.Chain.RPCURL)

	tracker, err := headtracker.New(
		ethClient,
		cfg.Chain,
		logger.NewComponentLoggerFromConfig(common.ComponentHeadTracker, cfg.Logging),
	)
	if err != nil {
		return fmt.Errorf("failed to create head tracker: %w", err)
	}

	log.Infof("Creating %d strategies...", len(cfg.Strategies))
	strategies, err := strategy.CreateAll(cfg.Strategies, strategy.Deps{
		DB:          database,
		Client:      ethClient,
		Maintenance: maintenance,
		Log:         logger.NewComponentLoggerFromConfig(common.ComponentStrategy, cfg.Logging),
	})
	if err != nil {
		return err
	}

	store := rangestore.New(
		database,
		maintenance,
		logger.NewComponentLoggerFromConfig(common.ComponentRangeStore, cfg.Logging),
	)

	runnerLog := logger.NewComponentLoggerFromConfig(common.ComponentRunner, cfg.Logging)
	runners := make([]*runner.Runner, 0, len(strategies))
	forceReindex := make([]string, 0)
	for i, s := range strategies {
		runners = append(runners, runner.New(s, store, database, maintenance, cfg.Runner, runnerLog))
		if cfg.Strategies[i].ForceReindex {
			forceReindex = append(forceReindex, s.Name())
		}
		log.Infof("✓ Registered strategy: %s (type: %s)", s.Name(), s.Type())
	}

	coord := coordinator.New(runners, store, tracker, coordinator.Options{
		PollInterval: cfg.Runner.PollInterval.Duration,
		ForceReindex: forceReindex,
	}, log)

	metricsServer := metrics.NewServer(cfg.Metrics, log)
	if err := metricsServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	defer func() {
		if err := metricsServer.Stop(context.Background()); err != nil {
			log.Warnf("Failed to stop metrics server: %v", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.API != nil && cfg.API.Enabled {
		apiServer := api.NewServer(
			cfg.API,
			coord,
			logger.NewComponentLoggerFromConfig(common.ComponentAPI, cfg.Logging),
		)
		g.Go(func() error {
			return apiServer.Start(gctx)
		})
	}

	g.Go(func() error {
		return coord.Run(gctx)
	})

	log.Info("Starting RangeIndexor...")

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("indexer failed: %w", err)
	}

	log.Info("RangeIndexor stopped successfully")
	return nil
}
