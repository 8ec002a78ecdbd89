package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/cutpruner/internal/persistence"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a fresh pruner and print its snapshot id",
	Long: `Builds a pruner from the active configuration, immediately
snapshots it (empty), and prints the snapshot id future feed/inspect
calls should reference.`,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := cfg.BuildPruner()
	if err != nil {
		return fmt.Errorf("build pruner: %w", err)
	}

	store, err := persistence.Open(cfg.Persistence.DBPath)
	if err != nil {
		return fmt.Errorf("open persistence store: %w", err)
	}
	defer store.Close()

	id, err := store.Save(p)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	fmt.Println(id)
	return nil
}
