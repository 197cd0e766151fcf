package types

import (
	"time"

	"github.com/shopspring/decimal"

	"zakatchain/config"
)

// Account is the registry record for a ledger participant. Balance is a
// snapshot refreshed from the ledger's balance map whenever the account is
// touched during balance application; the map, not this record, is
// authoritative.
type Account struct {
	Address      string
	Balance      decimal.Decimal
	JoinedAt     time.Time
	TxCount      int
	LevyPaid     decimal.Decimal
	LevyReceived decimal.Decimal
	Active       bool
}

// AccountExport is the stable snapshot form of a registry record.
type AccountExport struct {
	Address      string  `json:"address"`
	Balance      float64 `json:"balance"`
	JoinedAt     string  `json:"joined_at"`
	TxCount      int     `json:"tx_count"`
	LevyPaid     float64 `json:"levy_paid"`
	LevyReceived float64 `json:"levy_received"`
	Active       bool    `json:"active"`
}

// ToExport converts the record for snapshot serialization.
func (a *Account) ToExport() AccountExport {
	return AccountExport{
		Address:      a.Address,
		Balance:      a.Balance.InexactFloat64(),
		JoinedAt:     a.JoinedAt.Format(config.TimeLayout),
		TxCount:      a.TxCount,
		LevyPaid:     a.LevyPaid.InexactFloat64(),
		LevyReceived: a.LevyReceived.InexactFloat64(),
		Active:       a.Active,
	}
}
