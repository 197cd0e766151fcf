package ledger

import (
	"iter"

	"github.com/shopspring/decimal"

	"zakatchain/entry"
	"zakatchain/types"
)

// TaggedEntry is a sealed entry annotated with its containing block.
type TaggedEntry struct {
	entry.Entry
	BlockIndex uint64
	BlockHash  string
}

// ValidateChain re-derives every non-genesis block's seal hash from its
// stored fields and checks previous-hash linkage. It reports a single
// boolean and does not identify the failing block; callers needing
// diagnostics re-run per-block checks themselves. Detection is advisory:
// the ledger keeps accepting entries over an invalid chain.
func (l *Ledger) ValidateChain() bool {
	for i := 1; i < len(l.chain); i++ {
		current := l.chain[i]
		previous := l.chain[i-1]

		if current.Hash != current.ComputeHash() {
			return false
		}
		if current.PrevHash != previous.Hash {
			return false
		}
	}
	return true
}

// History returns a lazy, restartable sequence of every sealed entry in
// chain order then entry order, tagged with its block's index and hash.
// Pending entries are excluded. Each range over the sequence re-walks the
// chain as it stands at iteration time.
func (l *Ledger) History() iter.Seq[TaggedEntry] {
	return func(yield func(TaggedEntry) bool) {
		for _, b := range l.chain {
			for _, e := range b.Entries {
				tagged := TaggedEntry{
					Entry:      e,
					BlockIndex: b.Index,
					BlockHash:  b.Hash,
				}
				if !yield(tagged) {
					return
				}
			}
		}
	}
}

// Statistics is the aggregate view over the sealed chain and registry.
type Statistics struct {
	TotalBlocks    int
	TotalEntries   int
	TotalLevy      decimal.Decimal
	ChainValid     bool
	Creator        string
	Balances       map[string]decimal.Decimal
	Accounts       map[string]types.Account
	TotalAccounts  int
	ActiveAccounts int
}

// Statistics derives the aggregate view. It is a pure read and is safe to
// call at any time, including on a single-block chain.
func (l *Ledger) Statistics() Statistics {
	totalLevy := decimal.Zero
	totalEntries := 0
	for _, b := range l.chain {
		for _, e := range b.Entries {
			totalLevy = totalLevy.Add(e.Levy)
			totalEntries++
		}
	}

	balances := make(map[string]decimal.Decimal, len(l.balances))
	for id, b := range l.balances {
		balances[id] = b
	}

	accounts := make(map[string]types.Account, len(l.accounts))
	active := 0
	for id, acc := range l.accounts {
		accounts[id] = *acc
		if acc.Active {
			active++
		}
	}

	return Statistics{
		TotalBlocks:    len(l.chain),
		TotalEntries:   totalEntries,
		TotalLevy:      totalLevy,
		ChainValid:     l.ValidateChain(),
		Creator:        l.creator,
		Balances:       balances,
		Accounts:       accounts,
		TotalAccounts:  len(l.accounts),
		ActiveAccounts: active,
	}
}
