package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdfnamer/internal/files"
	"pdfnamer/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve filename and pdf export endpoints over http",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		// patterns and log level follow config.yaml edits, including "pattern set"
		a.cfg.DynamicReload(a.log)

		addr := listenAddr
		if addr == "" {
			addr = a.cfg.Config.ListenAddr
		}

		gin.SetMode(gin.ReleaseMode)
		srv := server.New(addr, a.builder, files.NewPDFRenderer(), a.log)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		// set up a channel to catch signals for graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			fmt.Printf("received signal: %s, shutting down.\n", sig)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	},
}
