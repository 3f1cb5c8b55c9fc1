// Package main is the entry point for the curator CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Curator/internal/config"
	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "curator",
		Short:   "Curator — browse, select, and prune JSONL item collections",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			return runBrowse(cfgPath)
		},
	}
	root.PersistentFlags().String("config", "", "path to curator.toml (default: search upward)")

	root.AddCommand(
		browseCmd(),
		initCmd(),
		exportCmd(),
		shortcutsCmd(),
	)

	return root
}

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the collection in the TUI (the default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			return runBrowse(cfgPath)
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create curator.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the collection to the export file without the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			out, _ := cmd.Flags().GetString("out")
			tag, _ := cmd.Flags().GetString("tag")
			return runExport(cfgPath, out, tag)
		},
	}
	cmd.Flags().String("out", "", "output path (default: export.path from config)")
	cmd.Flags().String("tag", "", "export only items carrying this tag")
	return cmd
}

func shortcutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts",
		Short: "Print the keyboard shortcut table",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatShortcuts(shortcut.Legend()))
			return nil
		},
	}
}

// formatShortcuts renders the published shortcut table for terminal output.
func formatShortcuts(entries []shortcut.LegendEntry) string {
	var b strings.Builder
	b.WriteString("Shortcuts\n")
	b.WriteString("─────────\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %-14s %s\n", e.Keys, e.Op)
	}
	return b.String()
}
