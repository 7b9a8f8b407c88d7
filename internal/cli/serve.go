package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/forcegraph/forcegraph/pkg/cache"
	"github.com/forcegraph/forcegraph/pkg/pipeline"
	"github.com/forcegraph/forcegraph/pkg/store"

	"github.com/forcegraph/forcegraph/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redis    string
		mongoURI string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

Backends are picked from flags, falling back to the config file:
  - Cache: Redis when --redis is set, local file cache otherwise
  - Store: MongoDB when --mongo is set, in-memory otherwise

The server shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if redis == "" {
				redis = c.Config.Cache.RedisAddr
			}
			if mongoURI == "" {
				mongoURI = c.Config.Store.MongoURI
			}
			return c.runServe(cmd.Context(), addr, redis, mongoURI)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address for the shared cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for the layout store")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string) error {
	cch, err := c.serveCache(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := c.serveStore(ctx, mongoURI)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(shutdownCtx)
	}()

	runner := pipeline.NewRunner(cch, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(st, runner, c.Logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving layout API", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (c *CLI) serveCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr != "" {
		c.Logger.Info("using Redis cache", "addr", redisAddr)
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return newCache(false)
}

func (c *CLI) serveStore(ctx context.Context, mongoURI string) (store.Store, error) {
	if mongoURI != "" {
		c.Logger.Info("using MongoDB store", "database", c.Config.Store.Database)
		return store.NewMongoStore(ctx, mongoURI, c.Config.Store.Database)
	}
	c.Logger.Warn("using in-memory store, layouts are lost on restart")
	return store.NewMemoryStore(), nil
}
