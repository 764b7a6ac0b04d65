package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/libertyflags/flaggy/internal/assistant"
	"github.com/libertyflags/flaggy/internal/bundles"
	"github.com/libertyflags/flaggy/internal/catalog"
	"github.com/libertyflags/flaggy/internal/config"
	"github.com/libertyflags/flaggy/internal/db"
	"github.com/libertyflags/flaggy/internal/knowledge"
	"github.com/libertyflags/flaggy/internal/recommend"
	"github.com/libertyflags/flaggy/internal/server"
	"github.com/libertyflags/flaggy/internal/session"
	"github.com/libertyflags/flaggy/internal/stats"
)

var (
	servePort    int
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat assistant server",
	Long:  `Starts the flaggy HTTP server: the chat endpoint for the storefront widget, the bundle lookup API, and intent analytics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if err := bundles.Validate(); err != nil {
			return fmt.Errorf("validating kit tables: %w", err)
		}

		// Knowledge base: custom catalog file or the builtin set.
		kb := knowledge.Default()
		if cfg.KnowledgeFile != "" {
			kb, err = knowledge.LoadFile(cfg.KnowledgeFile)
			if err != nil {
				return fmt.Errorf("loading knowledge base: %w", err)
			}
		}

		// Catalog client: recommendations are disabled without credentials.
		var catalogClient catalog.Client
		if cfg.CatalogEnabled() {
			catalogClient = catalog.NewStorefrontClient(
				cfg.Shopify.Domain, cfg.Shopify.StorefrontToken,
				cfg.Shopify.APIVersion, cfg.Shopify.Timeout())
		} else {
			fmt.Fprintln(os.Stderr, "Warning: shopify credentials not set, product recommendations disabled")
		}
		resolver := recommend.New(catalogClient, cfg.Shopify.Timeout())

		// Analytics: disabled when data_dir is empty.
		var events assistant.EventRecorder
		var statsStore *stats.Store
		if cfg.DataDir != "" {
			dbPath := filepath.Join(cfg.DataDir, "flaggy.db")
			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			statsStore = stats.NewStore(database)
			events = statsStore
		}

		sessions := session.NewStore(cfg.Chat.HistoryLimit)
		engine := assistant.NewEngine(kb, sessions, resolver,
			assistant.EscalationPolicy{Threshold: cfg.Chat.EscalationThreshold}, events)
		handler := assistant.NewHandler(engine, cfg.Chat.AnonymousSession == config.AnonymousShared)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAll,
			Origins:  append(cfg.Origins, serveOrigins...),
		})
		assistant.RegisterRoutes(srv.Router(), handler)
		bundles.RegisterRoutes(srv.Router())
		if statsStore != nil {
			stats.RegisterRoutes(srv.Router(), statsStore)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sweeper := session.NewSweeper(sessions, cfg.Chat.SweepInterval(), cfg.Chat.IdleTimeout())
		sweeper.Start(ctx)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "flaggy v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Intents: %d\n", kb.Len())
		fmt.Fprintf(os.Stderr, "  Escalation threshold: %d\n", cfg.Chat.EscalationThreshold)
		if cfg.CatalogEnabled() {
			fmt.Fprintf(os.Stderr, "  Catalog: %s\n", cfg.Shopify.Domain)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured port")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "origin", nil, "allowed CORS origins (storefront URLs)")
	rootCmd.AddCommand(serveCmd)
}
