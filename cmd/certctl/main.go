// certctl is the operator CLI: check a source URL, fetch and inspect the
// record set, verify a certificate number, export or archive a snapshot.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	configPath string
	sheetURL   string
	college    string
)

var rootCmd = &cobra.Command{
	Use:   "certctl",
	Short: "Manage the certificate catalog data source",
	Long: `certctl works with the spreadsheet-backed certificate catalog.

Examples:
  certctl check-url "https://docs.google.com/spreadsheets/d/ID/edit#gid=0"
  certctl fetch --url "https://docs.google.com/spreadsheets/d/ID/edit"
  certctl verify CERT-2024-001
  certctl export -o snapshot.csv
  certctl archive`,
}

func main() {
	setupLogger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&sheetURL, "url", "", "spreadsheet URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&college, "college", "", "website/company name fallback (overrides config)")

	rootCmd.AddCommand(checkURLCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(archiveCmd)
}
