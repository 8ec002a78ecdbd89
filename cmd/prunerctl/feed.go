package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/cutpruner/internal/cutio"
	"github.com/danielpatrickdp/cutpruner/internal/metrics"
	"github.com/danielpatrickdp/cutpruner/internal/persistence"
	"github.com/danielpatrickdp/cutpruner/internal/provenance"
)

var feedCmd = &cobra.Command{
	Use:   "feed <snapshot-id> <fixture.json>",
	Short: "Offer a fixture batch to a snapshot's AddCuts and re-snapshot",
	Long: `Loads the named snapshot, runs AddCuts with the fixture file's
candidates, writes provenance rows for the outcome, takes a fresh
snapshot, and prints the status vector followed by the new snapshot id.`,
	Args: cobra.ExactArgs(2),
	RunE: runFeed,
}

func runFeed(cmd *cobra.Command, args []string) error {
	snapshotID, fixturePath := args[0], args[1]

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

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	batch, err := cutio.DecodeFixtureBatch(data)
	if err != nil {
		return fmt.Errorf("decode fixture: %w", err)
	}
	a, b, isMyCut := batch.Rows()

	status, err := p.AddCuts(a, b, isMyCut)
	if err != nil {
		return fmt.Errorf("add cuts: %w", err)
	}

	sink := provenance.NewDBSink(store.DB())
	ids := p.Ids()
	for i, s := range status {
		decision := "admit"
		var cutID int64
		if s == 0 {
			decision = "reject"
		} else {
			cutID = ids[s-1]
		}
		entry := provenance.Entry{SnapshotID: snapshotID, CutID: cutID, TriggerType: "add_cuts", Decision: decision}
		if err := sink.Log(entry); err != nil {
			return fmt.Errorf("log provenance for candidate %d: %w", i, err)
		}
	}

	newID, err := store.Save(p)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	m := metrics.Default()
	m.Observe(p, status)

	fmt.Printf("status: %v\n", status)
	fmt.Println(newID)
	return nil
}
