package entry

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"zakatchain/config"
)

// Kind classifies an entry. The values are stable wire identifiers and
// appear verbatim in exported snapshots.
type Kind string

const (
	KindGenesis    Kind = "genesis"
	KindTransfer   Kind = "transfer"
	KindLevy       Kind = "levy"
	KindGift       Kind = "gift"
	KindSealReward Kind = "seal_reward"
)

// Entry is one recorded movement of funds. It is a value type and is
// immutable once constructed; an entry has no identity of its own, only a
// position inside the block that seals it.
type Entry struct {
	Sender    string          `json:"sender"`
	Receiver  string          `json:"receiver"`
	Amount    decimal.Decimal `json:"amount"`
	Levy      decimal.Decimal `json:"levy"`
	Kind      Kind            `json:"kind"`
	Timestamp time.Time       `json:"timestamp"`
}

// New builds an entry stamped with the current time.
func New(sender, receiver string, amount, levy decimal.Decimal, kind Kind) Entry {
	return Entry{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Levy:      levy,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

// TotalDebit is what the sender's balance is charged: amount plus levy.
func (e Entry) TotalDebit() decimal.Decimal {
	return e.Amount.Add(e.Levy)
}

// Serialize produces the deterministic wire form fed into block hashing.
func (e Entry) Serialize() []byte {
	metadata := fmt.Sprintf(
		"%s|%s|%s|%s|%s|%s",
		e.Kind, e.Sender, e.Receiver, e.Amount.String(), e.Levy.String(),
		e.Timestamp.Format(config.TimeLayout),
	)
	return []byte(metadata)
}

// Export is the stable snapshot form of an entry.
type Export struct {
	Sender    string  `json:"sender"`
	Receiver  string  `json:"receiver"`
	Amount    float64 `json:"amount"`
	Levy      float64 `json:"levy"`
	Kind      string  `json:"kind"`
	Timestamp string  `json:"timestamp"`
}

// ToExport converts the entry for snapshot serialization. Field names and
// ordering are frozen; treat any change as a format version bump.
func (e Entry) ToExport() Export {
	return Export{
		Sender:    e.Sender,
		Receiver:  e.Receiver,
		Amount:    e.Amount.InexactFloat64(),
		Levy:      e.Levy.InexactFloat64(),
		Kind:      string(e.Kind),
		Timestamp: e.Timestamp.Format(config.TimeLayout),
	}
}
