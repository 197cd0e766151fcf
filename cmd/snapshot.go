package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"zakatchain/config"
	"zakatchain/jsonx"
	"zakatchain/ledger"
)

// writeSnapshot serializes the full ledger export to a JSON file.
func writeSnapshot(l *ledger.Ledger, path string) error {
	data, err := jsonx.MarshalIndent(l.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// writeHistoryCSV flattens the sealed history into CSV rows, one per
// entry, tagged with block index and hash.
func writeHistoryCSV(l *ledger.Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"block_index", "block_hash", "kind", "sender", "receiver", "amount", "levy", "timestamp"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for tagged := range l.History() {
		row := []string{
			fmt.Sprintf("%d", tagged.BlockIndex),
			tagged.BlockHash,
			string(tagged.Kind),
			tagged.Sender,
			tagged.Receiver,
			tagged.Amount.String(),
			tagged.Levy.String(),
			tagged.Timestamp.Format(config.TimeLayout),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
