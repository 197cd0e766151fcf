package entry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalDebit(t *testing.T) {
	e := New("alice", "bob", decimal.NewFromInt(50), decimal.RequireFromString("2.5"), KindTransfer)
	assert.True(t, e.TotalDebit().Equal(decimal.RequireFromString("52.5")))
}

func TestSerializeIsDeterministic(t *testing.T) {
	e := New("alice", "bob", decimal.NewFromInt(10), decimal.Zero, KindGift)
	require.Equal(t, e.Serialize(), e.Serialize())
}

func TestSerializeCoversEveryField(t *testing.T) {
	ts := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	base := Entry{
		Sender:    "alice",
		Receiver:  "bob",
		Amount:    decimal.NewFromInt(10),
		Levy:      decimal.RequireFromString("0.25"),
		Kind:      KindTransfer,
		Timestamp: ts,
	}

	mutations := map[string]Entry{
		"sender":    {Sender: "carol", Receiver: "bob", Amount: base.Amount, Levy: base.Levy, Kind: base.Kind, Timestamp: ts},
		"receiver":  {Sender: "alice", Receiver: "dave", Amount: base.Amount, Levy: base.Levy, Kind: base.Kind, Timestamp: ts},
		"amount":    {Sender: "alice", Receiver: "bob", Amount: decimal.NewFromInt(11), Levy: base.Levy, Kind: base.Kind, Timestamp: ts},
		"levy":      {Sender: "alice", Receiver: "bob", Amount: base.Amount, Levy: decimal.RequireFromString("0.5"), Kind: base.Kind, Timestamp: ts},
		"kind":      {Sender: "alice", Receiver: "bob", Amount: base.Amount, Levy: base.Levy, Kind: KindGift, Timestamp: ts},
		"timestamp": {Sender: "alice", Receiver: "bob", Amount: base.Amount, Levy: base.Levy, Kind: base.Kind, Timestamp: ts.Add(time.Second)},
	}
	for field, mutated := range mutations {
		assert.NotEqual(t, base.Serialize(), mutated.Serialize(), "mutating %s must change the wire form", field)
	}
}

func TestToExport(t *testing.T) {
	ts := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	e := Entry{
		Sender:    "alice",
		Receiver:  "bob",
		Amount:    decimal.NewFromInt(50),
		Levy:      decimal.RequireFromString("5"),
		Kind:      KindTransfer,
		Timestamp: ts,
	}

	exp := e.ToExport()
	assert.Equal(t, "alice", exp.Sender)
	assert.Equal(t, "bob", exp.Receiver)
	assert.Equal(t, 50.0, exp.Amount)
	assert.Equal(t, 5.0, exp.Levy)
	assert.Equal(t, "transfer", exp.Kind)
	assert.Equal(t, "2026-08-26 09:30:00", exp.Timestamp)
}
