package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/clausegest/internal/api"
	"github.com/dgallion1/clausegest/internal/clause"
	"github.com/dgallion1/clausegest/internal/config"
	"github.com/dgallion1/clausegest/internal/extract"
	"github.com/dgallion1/clausegest/internal/workbook"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clausegest",
		Short: "Standards clause extractor",
		Long: `Clausegest recovers the numbered clause hierarchy of a standards
document PDF and writes it as a JSON tree and an Excel workbook.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Extract clauses from a standards PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}

			result, err := extract.File(args[0], cfg)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			jsonPath := filepath.Join(outputDir, "clauses.json")
			payload, err := json.MarshalIndent(clause.Tree(result.Clauses), "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(jsonPath, payload, 0644); err != nil {
				return fmt.Errorf("write %s: %w", jsonPath, err)
			}

			xlsxPath := filepath.Join(outputDir, "clauses.xlsx")
			f, err := os.Create(xlsxPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", xlsxPath, err)
			}
			if err := workbook.Write(f, result.Rows); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", xlsxPath, err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Printf("Wrote JSON: %s\n", jsonPath)
			fmt.Printf("Wrote Excel: %s\n", xlsxPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "output", "Directory where outputs will be written")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			srv := api.NewServer(func(data []byte) (*extract.Result, error) {
				return extract.Bytes(data, cfg)
			}, log, cfg)

			httpServer := &http.Server{
				Addr:         addr,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting clausegest", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default HOST:PORT from environment, 127.0.0.1:8000)")
	return cmd
}
