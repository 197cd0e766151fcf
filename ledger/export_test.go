package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zakatchain/jsonx"
)

func TestExportSnapshotShape(t *testing.T) {
	l := newTestLedger("C1", 200)
	require.NoError(t, l.RegisterAccount("C2", decimal.NewFromInt(100)))
	require.NoError(t, l.CreateTransfer("C1", "C2", decimal.NewFromInt(50)))
	l.Seal("C1")

	data, err := jsonx.Marshal(l.Export())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, jsonx.Unmarshal(data, &doc))

	for _, key := range []string{"creator", "chain", "balances", "accounts", "levy_rate", "statistics"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, "C1", doc["creator"])
	assert.InDelta(t, 0.025, doc["levy_rate"], 1e-12)

	chain, ok := doc["chain"].([]interface{})
	require.True(t, ok)
	require.Len(t, chain, 2)

	blockDoc, ok := chain[1].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"index", "entries", "previous_hash", "seed_key", "timestamp", "nonce", "hash"} {
		assert.Contains(t, blockDoc, key)
	}

	entries, ok := blockDoc["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 2) // transfer + reward

	entryDoc, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"sender", "receiver", "amount", "levy", "kind", "timestamp"} {
		assert.Contains(t, entryDoc, key)
	}
	assert.Equal(t, "transfer", entryDoc["kind"])
	assert.InDelta(t, 50.0, entryDoc["amount"], 1e-9)
	assert.InDelta(t, 5.0, entryDoc["levy"], 1e-9)

	statsDoc, ok := doc["statistics"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"total_blocks", "total_entries", "total_levy_collected", "chain_valid", "balances", "accounts", "total_accounts", "active_accounts"} {
		assert.Contains(t, statsDoc, key)
	}
	assert.Equal(t, true, statsDoc["chain_valid"])

	balances, ok := doc["balances"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 155.0, balances["C1"], 1e-9)
	assert.InDelta(t, 150.0, balances["C2"], 1e-9)
}

func TestExportMatchesLinkage(t *testing.T) {
	l := newTestLedger("C1", 200)
	l.Seal("C1")
	snap := l.Export()

	require.Len(t, snap.Chain, 2)
	assert.Equal(t, snap.Chain[0].Hash, snap.Chain[1].PrevHash)
	assert.Equal(t, "C1", snap.Chain[0].SeedKey)
	assert.Equal(t, "C1", snap.Chain[1].SeedKey)
	assert.Equal(t, "0", snap.Chain[0].PrevHash)
}
