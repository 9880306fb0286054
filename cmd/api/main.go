// ABOUTME: Main entry point for the article parser API server
// ABOUTME: Cobra commands to serve the HTTP endpoint or run a single extraction

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"article-parser-api/api"
	"article-parser-api/core/domain"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(newApp).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(factory appFactory) *cobra.Command {
	serve := newServeCmd(factory)

	root := &cobra.Command{
		Use:           "article-parser-api",
		Short:         "Extract articles and read feeds over HTTP",
		Long:          "Serves article extraction and feed reading on port 277. Running without a subcommand starts the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newExtractCmd(factory))
	return root
}

func newServeCmd(factory appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := factory()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(a.cfg.Server, a.extractor, a.logger)
			return runServer(ctx, a, server)
		},
	}
}

// serverRunner is the lifecycle of api.Server
type serverRunner interface {
	Start() error
	Stop(ctx context.Context) error
}

// runServer starts server and stops it gracefully once ctx is done
func runServer(ctx context.Context, a *app, server serverRunner) error {
	a.logger.Info("Starting article parser API", map[string]interface{}{
		"port":          a.cfg.Server.Port,
		"error_detail":  a.cfg.Server.ErrorDetail,
		"max_in_flight": a.cfg.Server.MaxInFlight,
		"markdown":      a.cfg.Reader.Markdown,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	if err := <-errCh; err != nil {
		return err
	}

	a.logger.Info("Server stopped", nil)
	return nil
}

func newExtractCmd(factory appFactory) *cobra.Command {
	var isFeed bool

	cmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Extract a single article or feed and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := factory()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			defer a.Close()

			mode := domain.ArticleMode
			if isFeed {
				mode = domain.FeedMode
			}

			result, err := a.extractor.Extract(cmd.Context(), mode, args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().BoolVar(&isFeed, "feed", false, "read the url as an RSS/Atom/JSON feed")
	return cmd
}
