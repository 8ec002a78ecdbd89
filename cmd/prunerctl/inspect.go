package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/cutpruner/internal/persistence"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot-id>",
	Short: "Print a snapshot's ids, trust, and sense",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	snapshotID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := persistence.Open(cfg.Persistence.DBPath)
	if err != nil {
		return fmt.Errorf("open persistence store: %w", err)
	}
	defer store.Close()

	p, err := store.Load(snapshotID)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", snapshotID, err)
	}

	variant, newCutTrust, myCutBonus, lambda := p.Variant()
	fmt.Printf("snapshot:    %s\n", snapshotID)
	fmt.Printf("dim:         %d\n", p.Dim())
	fmt.Printf("sense:       %s\n", p.GetSense())
	fmt.Printf("max_cuts:    %d\n", p.MaxCuts())
	fmt.Printf("variant:     %s (new_cut_trust=%.4f, my_cut_bonus=%.4f, lambda=%.4f)\n",
		variant, newCutTrust, myCutBonus, lambda)
	fmt.Printf("n_cuts:      %d\n", p.NCuts())

	ids := p.Ids()
	trust := p.GetTrust()
	fmt.Println("id       trust")
	for i := range ids {
		fmt.Printf("%-8d %.6f\n", ids[i], trust[i])
	}
	return nil
}
