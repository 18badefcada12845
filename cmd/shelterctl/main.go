// shelterctl agrupa las tareas de operación: migraciones y la importación
// del sitio viejo (scraping, descarga de fotos, carga en la base y el bucket).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shelter-dogs/internal/app"
	"shelter-dogs/internal/platform/config"
	"shelter-dogs/internal/platform/logger"
)

var (
	configPath string
	verbose    bool

	cfg config.Config
	log logger.Logger = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "shelterctl",
	Short:         "Operational tasks for the shelter dogs service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg, err = config.LoadFromEnv()
		}
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		log = app.NewLogger(cfg.Log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: SHELTER_CONFIG env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(importDescriptionsCmd)
	rootCmd.AddCommand(backfillSexCmd)
	rootCmd.AddCommand(uploadPhotosCmd)
	rootCmd.AddCommand(deleteLogosCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if zl, ok := log.(*logger.ZapLogger); ok {
		_ = zl.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
