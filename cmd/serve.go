package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wassat/website/internal/chat"
	"github.com/wassat/website/internal/config"
	"github.com/wassat/website/internal/db"
	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/inquiry"
	"github.com/wassat/website/internal/language"
	"github.com/wassat/website/internal/llm"
	"github.com/wassat/website/internal/overlay"
	"github.com/wassat/website/internal/page"
	"github.com/wassat/website/internal/scroll"
	"github.com/wassat/website/internal/server"
	"github.com/wassat/website/internal/site"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website",
	Long:  `Starts the HTTP server with the page views, the chat assistant, the dictionaries and the contact form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveListen != "" {
			cfg.Listen = serveListen
		}
		logger := newLogger(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		renderer, err := site.NewRenderer(catalog)
		if err != nil {
			return fmt.Errorf("parsing templates: %w", err)
		}
		messages, err := chat.LoadMessages()
		if err != nil {
			return fmt.Errorf("loading chat messages: %w", err)
		}

		deps := page.Deps{
			Renderer: renderer,
			Fetcher:  newFetcher(cfg, catalog),
			Messages: messages,
			Scroll: scroll.Config{
				NavThreshold:   cfg.UI.NavThreshold,
				RevealFraction: cfg.UI.RevealFraction,
			},
			Overlay: overlay.Options{
				Clock:          overlay.RealClock,
				ZoomEnterDelay: cfg.ZoomEnterDelay(),
				ZoomExitDelay:  cfg.ZoomExitDelay(),
			},
			Temperature: cfg.Chat.Temperature,
			Logger:      logger,
		}

		if cfg.Chat.Enabled {
			provider, err := llm.NewProvider(ctx, string(cfg.Chat.Provider), cfg.Chat.Model, llm.Options{BaseURL: cfg.Chat.BaseURL})
			if err != nil {
				return fmt.Errorf("creating chat provider: %w", err)
			}
			if c, ok := provider.(io.Closer); ok {
				defer c.Close()
			}
			deps.Generator = chat.ProviderGenerator{
				Provider:  llm.NewRateLimitedProvider(provider, cfg.Chat.RequestsPerMinute),
				Model:     cfg.Chat.Model,
				MaxTokens: cfg.Chat.MaxTokens,
				Timeout:   cfg.ChatTimeout(),
				Logger:    logger,
			}
			deps.ChatEnabled = true
			logger.Info("chat assistant enabled", "provider", provider.Name(), "model", cfg.Chat.Model)
		} else {
			logger.Warn("chat assistant disabled")
		}

		registry := page.NewRegistry(page.NewBuilder(deps), page.RegistryOptions{
			TTL:      cfg.SessionTTL(),
			MaxPages: cfg.Session.MaxViews,
			Logger:   logger,
		})
		go registry.Run(ctx, cfg.SweepInterval())

		srvDeps := server.Deps{
			Registry: registry,
			Catalog:  catalog,
			Logger:   logger,
		}
		if cfg.Contact.Enabled {
			database, err := db.Open(cfg.DatabasePath())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			srvDeps.Inquiries = inquiry.NewStore(database)
			logger.Info("contact form enabled", "database", database.Path())
		}

		srv := server.New(server.Config{
			Listen:         cfg.Listen,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}, srvDeps)

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown", "err", err)
			}
		}()

		logger.Info("site starting",
			"version", Version,
			"i18n_source", cfg.I18n.Source,
			"languages", len(i18n.Supported),
		)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// loadCatalog loads the dictionaries rendered into new pages. Remote
// sources still render from the embedded set.
func loadCatalog(cfg *config.Config) (*i18n.Catalog, error) {
	if cfg.I18n.Source == config.SourceDir {
		cat, err := i18n.LoadDir(cfg.I18n.LocalesDir)
		if err != nil {
			return nil, fmt.Errorf("loading dictionaries: %w", err)
		}
		return cat, nil
	}
	cat, err := i18n.Embedded()
	if err != nil {
		return nil, fmt.Errorf("loading embedded dictionaries: %w", err)
	}
	return cat, nil
}

func newFetcher(cfg *config.Config, catalog *i18n.Catalog) language.Fetcher {
	if cfg.I18n.Source == config.SourceRemote {
		timeout := time.Duration(cfg.I18n.FetchTimeoutSeconds) * time.Second
		return language.NewHTTPFetcher(cfg.I18n.RemoteURL, timeout)
	}
	return language.CatalogFetcher{Catalog: catalog}
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
