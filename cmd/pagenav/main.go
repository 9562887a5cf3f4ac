// Package main is the entry point for the pagenav CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.PageNav/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags runFlags
	root := &cobra.Command{
		Use:          "pagenav",
		Short:        "pagenav: a draggable, reorderable page tab bar",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(flags)
		},
	}
	root.Flags().StringVar(&flags.configPath, "config", "", "path to pagenav.toml (default: search upward from the working directory)")
	root.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse input")
	root.Flags().StringVar(&flags.logFile, "log-file", "", "write diagnostic logs to this file")

	root.AddCommand(initCmd())
	return root
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create pagenav.toml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
