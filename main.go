package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"iwmenu/app"
	"iwmenu/config"
	"iwmenu/iwctl"
	"iwmenu/log"
)

var (
	version = "1.0.0"

	debugFlag bool

	rootCmd = &cobra.Command{
		Use:   "iwmenu",
		Short: "iwmenu - a terminal menu for the iwctl wireless tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugFlag {
				log.EnableDebug()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			app.FirstRunSetup(cfg, iwctl.Run)

			return app.Run(ctx, cfg)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of iwmenu",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("iwmenu version %s\n", version)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Remove the stored default station and adapter",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.ResetConfig(); err != nil {
				return fmt.Errorf("failed to reset config: %w", err)
			}
			fmt.Println("Stored defaults have been removed; the next start runs first-run setup")
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
