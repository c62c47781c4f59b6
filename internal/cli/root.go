// Package cli implements the wedding-planner commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wedding-planner/internal/config"
	"wedding-planner/internal/planner"
	"wedding-planner/internal/storage"
)

var (
	configPath    string
	dataDir       string
	storageDriver string
	formatFlag    string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "wedding-planner",
	Short: "Plan a wedding: guests, budget, tasks and an AI assistant",
	Long: "Keeps the guest list, budget and task list of a wedding on the local machine, " +
		"shows the dashboard, and chats with a Gemini-backed wedding planner.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: $WEDDING_CONFIG)")
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory (default: $WEDDING_DATA_DIR or ./data)")
	RootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "Storage driver: file, sqlite or memory")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	backend storage.Backend
	planner *planner.Planner
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if storageDriver != "" {
		cfg.StorageDriver = storageDriver
	}
	log := cfg.NewLogger(os.Stderr)

	wedding, err := cfg.WeddingData()
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(cfg.StorageDriver, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	p, err := planner.New(backend, planner.Config{Wedding: wedding}, log)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &app{cfg: cfg, log: log, backend: backend, planner: p}, nil
}

func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.log.Error().Err(err).Msg("Failed to close storage")
	}
}

func mustOpenApp() *app {
	a, err := openApp()
	if err != nil {
		exitErr("open planner", err)
	}
	return a
}

func jsonOutput() bool {
	return formatFlag == "json"
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func notFound(kind, id string) {
	exitErr(kind, fmt.Errorf("%s: %w", id, planner.ErrNotFound))
}
