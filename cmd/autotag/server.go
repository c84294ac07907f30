package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	appconfig "github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/config"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the enrichment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080, or AUTOTAG_ADDR)")
	serveCmd.Flags().String("db", "", "SQLite file for row persistence (default: in-memory)")
	serveCmd.Flags().String("token", "", "bearer token for /v1 routes (default: none)")
}

func runServer(cmd *cobra.Command) error {
	cfg := appconfig.Load()
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Store.Path = v
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		cfg.Server.AuthToken = v
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comp, err := tableComponents(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	handler := httpapi.NewHandler(httpapi.Deps{
		Pipeline:     comp.Pipeline(),
		ContentTypes: comp.ContentTypes,
		Store:        st,
		Logger:       logger,
		Token:        cfg.Server.AuthToken,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("autotag listening", "addr", cfg.Server.Addr, "store", storeLabel(cfg.Store.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func storeLabel(path string) string {
	if path == "" {
		return "memory"
	}
	return path
}
