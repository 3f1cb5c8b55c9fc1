package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Curator/internal/config"
	"github.com/LISSConsulting/LISSTech.Curator/internal/item"
	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
	"github.com/LISSConsulting/LISSTech.Curator/internal/store"
	"github.com/LISSConsulting/LISSTech.Curator/internal/tui"
)

// runBrowse loads the configuration and the collection, runs the TUI, and
// saves the collection back when the program exits. Deleted items are gone
// from disk only at this point; quitting is the commit.
func runBrowse(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	st := store.NewJSONL(cfg.Collection.Path)
	items, err := st.Load()
	if err != nil {
		return err
	}

	model := tui.New(tui.Params{
		CollectionName:  cfg.Collection.Name,
		Items:           items,
		HistoryCapacity: cfg.History.Capacity,
		Keys: shortcut.Options{
			UndoRedo:       cfg.Keys.UndoRedo,
			BulkOperations: cfg.Keys.BulkOperations,
		},
		ExportPath:  cfg.Export.Path,
		AccentColor: cfg.TUI.AccentColor,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if err := st.Save(m.Items()); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}

// runExport writes the collection to out without starting the TUI. An empty
// out falls back to the configured export path; a non-empty tag keeps only
// items carrying it.
func runExport(configPath, out, tag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if out == "" {
		out = cfg.Export.Path
	}

	items, err := store.NewJSONL(cfg.Collection.Path).Load()
	if err != nil {
		return err
	}
	if tag != "" {
		items = filterByTag(items, tag)
	}

	if err := store.ExportFile(out, items); err != nil {
		return err
	}
	fmt.Printf("Exported %d items to %s\n", len(items), out)
	return nil
}

func filterByTag(items []item.Item, tag string) []item.Item {
	var kept []item.Item
	for _, it := range items {
		for _, t := range it.Tags {
			if t == tag {
				kept = append(kept, it)
				break
			}
		}
	}
	return kept
}
