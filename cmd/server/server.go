package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dexkit/pokedex-api/internal/clients/pokeapi"
	"github.com/dexkit/pokedex-api/internal/config"
	"github.com/dexkit/pokedex-api/internal/handlers/rest"
	"github.com/dexkit/pokedex-api/internal/orchestrators/comparison"
	"github.com/dexkit/pokedex-api/internal/orchestrators/diagnosis"
	"github.com/dexkit/pokedex-api/internal/orchestrators/personality"
	"github.com/dexkit/pokedex-api/internal/orchestrators/pokedex"
	"github.com/dexkit/pokedex-api/internal/pkg/clock"
	"github.com/dexkit/pokedex-api/internal/pkg/idgen"
	redisclient "github.com/dexkit/pokedex-api/internal/redis"
	comparisonhistory "github.com/dexkit/pokedex-api/internal/repositories/comparison_history"
)

const shutdownTimeout = 30 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the pokedex API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.Routes(),
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err.Error())
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildHandler(cfg *config.Config) (*rest.Handler, error) {
	redis, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	historyRepo, err := comparisonhistory.NewRedisRepository(&comparisonhistory.Config{
		Client: redis,
		Clock:  clock.New(),
		IDGen:  idgen.NewUUID("cmp"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create history repository: %w", err)
	}

	apiClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPIBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
		Language:    cfg.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	pokedexService, err := pokedex.New(&pokedex.Config{
		PokeAPIClient: apiClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokedex service: %w", err)
	}

	comparisonService, err := comparison.New(&comparison.Config{
		PokeAPIClient: apiClient,
		HistoryRepo:   historyRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comparison service: %w", err)
	}

	diagnosisService, err := diagnosis.New(&diagnosis.Config{
		PokeAPIClient: apiClient,
		CatalogLimit:  cfg.CatalogLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create diagnosis service: %w", err)
	}

	personalityService, err := personality.New(&personality.Config{
		PokeAPIClient: apiClient,
		CatalogLimit:  cfg.CatalogLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create personality service: %w", err)
	}

	return rest.NewHandler(&rest.HandlerConfig{
		PokedexService:     pokedexService,
		ComparisonService:  comparisonService,
		DiagnosisService:   diagnosisService,
		PersonalityService: personalityService,
	})
}
