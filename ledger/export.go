package ledger

import (
	"zakatchain/block"
	"zakatchain/config"
	"zakatchain/types"
)

// Snapshot is the full structural export of a ledger, shaped for
// serialization to a persisted JSON document. Field names and nesting are
// frozen; treat any change as a format version bump.
type Snapshot struct {
	Creator    string                         `json:"creator"`
	Chain      []block.Export                 `json:"chain"`
	Balances   map[string]float64             `json:"balances"`
	Accounts   map[string]types.AccountExport `json:"accounts"`
	LevyRate   float64                        `json:"levy_rate"`
	Statistics StatisticsExport               `json:"statistics"`
}

// StatisticsExport is the snapshot form of Statistics.
type StatisticsExport struct {
	TotalBlocks    int                            `json:"total_blocks"`
	TotalEntries   int                            `json:"total_entries"`
	TotalLevy      float64                        `json:"total_levy_collected"`
	ChainValid     bool                           `json:"chain_valid"`
	Creator        string                         `json:"creator"`
	Balances       map[string]float64             `json:"balances"`
	Accounts       map[string]types.AccountExport `json:"accounts"`
	TotalAccounts  int                            `json:"total_accounts"`
	ActiveAccounts int                            `json:"active_accounts"`
}

// Export builds the snapshot record. Pending entries are not part of the
// export; only the sealed chain and the state derived from it are.
func (l *Ledger) Export() Snapshot {
	chain := make([]block.Export, 0, len(l.chain))
	for _, b := range l.chain {
		chain = append(chain, b.ToExport())
	}

	balances := make(map[string]float64, len(l.balances))
	for id, b := range l.balances {
		balances[id] = b.InexactFloat64()
	}

	accounts := make(map[string]types.AccountExport, len(l.accounts))
	for id, acc := range l.accounts {
		accounts[id] = acc.ToExport()
	}

	stats := l.Statistics()
	return Snapshot{
		Creator:  l.creator,
		Chain:    chain,
		Balances: balances,
		Accounts: accounts,
		LevyRate: config.LevyRate.InexactFloat64(),
		Statistics: StatisticsExport{
			TotalBlocks:    stats.TotalBlocks,
			TotalEntries:   stats.TotalEntries,
			TotalLevy:      stats.TotalLevy.InexactFloat64(),
			ChainValid:     stats.ChainValid,
			Creator:        stats.Creator,
			Balances:       balances,
			Accounts:       accounts,
			TotalAccounts:  stats.TotalAccounts,
			ActiveAccounts: stats.ActiveAccounts,
		},
	}
}
