// Package ledger implements the single-writer, in-memory append-only
// chain that records monetary transfers and the automatic 2.5% levy on
// every outgoing transfer.
//
// The ledger performs no internal locking: it is designed for one logical
// caller at a time issuing enqueue, seal and query operations
// sequentially. Simulations that share one ledger between several
// participants must serialize access externally.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"zakatchain/block"
	"zakatchain/config"
	"zakatchain/entry"
	"zakatchain/logx"
	"zakatchain/types"
)

var (
	// ErrDuplicateAccount rejects registration of an id that already has
	// a registry record.
	ErrDuplicateAccount = errors.New("account already registered")

	// ErrInsufficientBalance rejects an entry whose sender cannot cover
	// amount plus levy at enqueue time.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNoLevyDue rejects a levy entry that would collect nothing.
	ErrNoLevyDue = errors.New("no levy due")

	// ErrInvalidAmount rejects non-positive transfer and gift amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Option tweaks ledger parameters at construction.
type Option func(*Ledger)

// WithDifficulty overrides the proof-of-work difficulty (leading zero hex
// characters). Useful for tests that cannot afford the default search.
func WithDifficulty(d int) Option {
	return func(l *Ledger) { l.difficulty = d }
}

// WithSealReward overrides the reward credited to whoever seals a block.
func WithSealReward(r decimal.Decimal) Option {
	return func(l *Ledger) { l.sealReward = r }
}

// Ledger owns the ordered chain of sealed blocks, the pending entry set,
// the balance map and the account registry. The chain is append-only;
// blocks are never truncated, reordered or re-mined.
type Ledger struct {
	creator    string
	chain      []*block.Block
	pending    []entry.Entry
	balances   map[string]decimal.Decimal
	accounts   map[string]*types.Account
	difficulty int
	sealReward decimal.Decimal
}

// New creates a ledger, registers the creator as its first account and
// seals the genesis block crediting the creator's starting balance.
func New(creator string, startingBalance decimal.Decimal, opts ...Option) *Ledger {
	l := &Ledger{
		creator:    creator,
		balances:   map[string]decimal.Decimal{creator: startingBalance},
		accounts:   make(map[string]*types.Account),
		difficulty: config.DefaultDifficulty,
		sealReward: config.DefaultSealReward,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.registerAccount(creator, startingBalance)
	l.createGenesisBlock(startingBalance)

	logx.Info("LEDGER", fmt.Sprintf("Created ledger, creator=%s balance=%s difficulty=%d",
		creator, startingBalance.String(), l.difficulty))
	return l
}

// createGenesisBlock synthesizes block 0 with a single genesis entry. The
// block's hash is accepted as computed; genesis is never mined and its
// entry is never run through balance application, since the balance map
// is seeded at registration.
func (l *Ledger) createGenesisBlock(startingBalance decimal.Decimal) {
	genesisEntry := entry.New(config.GenesisSender, l.creator, startingBalance, decimal.Zero, entry.KindGenesis)
	genesis := block.Assemble(0, []entry.Entry{genesisEntry}, config.GenesisPrevHash, l.creator)
	l.chain = append(l.chain, genesis)
}

// Creator returns the identifier the ledger was created with. It doubles
// as the seed key of every block.
func (l *Ledger) Creator() string { return l.creator }

// Difficulty returns the configured proof-of-work difficulty.
func (l *Ledger) Difficulty() int { return l.difficulty }

// SealReward returns the configured per-block seal reward.
func (l *Ledger) SealReward() decimal.Decimal { return l.sealReward }

// RegisterAccount creates a registry record for id with a starting
// balance. Registration never overwrites: a second call for the same id
// fails with ErrDuplicateAccount. The balance map is only seeded when the
// id has no balance yet, so registering an id that already moved funds
// keeps its earned balance.
func (l *Ledger) RegisterAccount(id string, startingBalance decimal.Decimal) error {
	if _, ok := l.accounts[id]; ok {
		return ErrDuplicateAccount
	}
	l.registerAccount(id, startingBalance)
	return nil
}

func (l *Ledger) registerAccount(id string, startingBalance decimal.Decimal) {
	l.accounts[id] = &types.Account{
		Address:  id,
		Balance:  startingBalance,
		JoinedAt: time.Now(),
		Active:   true,
	}
	if _, ok := l.balances[id]; !ok {
		l.balances[id] = startingBalance
	}
}

// levyOn computes the obligatory levy for a sender holding balance b.
// The levy is a share of the balance, never of the transfer amount.
func levyOn(b decimal.Decimal) decimal.Decimal {
	return b.Mul(config.LevyRate)
}

// CreateLevy enqueues a levy entry deducting 2.5% of from's current
// balance. An empty to defaults to the levy fund. Fails with ErrNoLevyDue
// when the sender's balance yields no positive levy.
func (l *Ledger) CreateLevy(from, to string) error {
	if to == "" {
		to = config.LevyFund
	}
	levy := levyOn(l.Balance(from))
	if levy.Sign() <= 0 {
		return ErrNoLevyDue
	}
	e := entry.New(from, to, decimal.Zero, levy, entry.KindLevy)
	return l.enqueue(e)
}

// CreateTransfer enqueues a transfer of amount from from to to, carrying
// the levy computed on from's current balance on top of the amount.
func (l *Ledger) CreateTransfer(from, to string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	levy := levyOn(l.Balance(from))
	e := entry.New(from, to, amount, levy, entry.KindTransfer)
	return l.enqueue(e)
}

// CreateGift enqueues a levy-free transfer. Gifts bypass the levy
// computation entirely but still pass balance-sufficiency validation.
func (l *Ledger) CreateGift(from, to string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	e := entry.New(from, to, amount, decimal.Zero, entry.KindGift)
	return l.enqueue(e)
}

// enqueue validates the entry against current balances and appends it to
// the pending set. A rejected entry leaves the pending set untouched.
func (l *Ledger) enqueue(e entry.Entry) error {
	if err := l.validate(e); err != nil {
		logx.Warn("LEDGER", fmt.Sprintf("Rejected %s entry %s -> %s: %v", e.Kind, e.Sender, e.Receiver, err))
		return err
	}
	l.pending = append(l.pending, e)
	return nil
}

// validate is the enqueue-time precondition: the sender's current balance
// must cover amount plus levy. It does not reserve funds; several entries
// from one sender may pass individually and still overdraw collectively
// at seal time, where deltas are applied unconditionally in entry order.
// Synthetic senders are exempt.
func (l *Ledger) validate(e entry.Entry) error {
	if e.Sender == config.GenesisSender || e.Sender == config.SystemSender {
		return nil
	}
	if l.Balance(e.Sender).LessThan(e.TotalDebit()) {
		return ErrInsufficientBalance
	}
	return nil
}

// Seal batches the pending set plus a seal-reward entry into a new block,
// runs the proof-of-work search, appends the block, applies its balance
// deltas in entry order and clears the pending set. It cannot fail: an
// empty pending set yields a reward-only block. There is no rollback.
func (l *Ledger) Seal(sealer string) *block.Block {
	reward := entry.New(config.SystemSender, sealer, l.sealReward, decimal.Zero, entry.KindSealReward)
	l.pending = append(l.pending, reward)

	// Seed key is always the creator's id, independent of who seals, so
	// hash derivation stays re-derivable across sealers.
	latest := l.chain[len(l.chain)-1]
	b := block.Assemble(uint64(len(l.chain)), l.pending, latest.Hash, l.creator)
	b.Seal(l.difficulty)

	l.chain = append(l.chain, b)
	l.applyBlock(b)
	l.pending = nil

	logx.Info("LEDGER", fmt.Sprintf("Sealed block %d by %s: %d entries, nonce=%d, hash=%s",
		b.Index, sealer, len(b.Entries), b.Nonce, b.Hash))
	return b
}

// applyBlock applies balance deltas for every entry in order. Unseen
// senders and receivers get a zero balance first. Registry counters are
// only maintained for registered accounts.
func (l *Ledger) applyBlock(b *block.Block) {
	for i := range b.Entries {
		e := &b.Entries[i]

		if e.Sender != config.SystemSender && e.Sender != config.GenesisSender {
			if _, ok := l.balances[e.Sender]; !ok {
				l.balances[e.Sender] = decimal.Zero
			}
			l.balances[e.Sender] = l.balances[e.Sender].Sub(e.TotalDebit())
			l.touchAccount(e.Sender, e.Levy, decimal.Zero)
		}

		if _, ok := l.balances[e.Receiver]; !ok {
			l.balances[e.Receiver] = decimal.Zero
		}
		l.balances[e.Receiver] = l.balances[e.Receiver].Add(e.Amount)

		if e.Kind == entry.KindLevy && e.Receiver != config.LevyFund {
			l.touchAccount(e.Receiver, decimal.Zero, e.Levy)
		}
	}
}

// touchAccount bumps a registered account's counters and refreshes its
// balance snapshot from the map. Unregistered ids are ignored.
func (l *Ledger) touchAccount(id string, levyPaid, levyReceived decimal.Decimal) {
	acc, ok := l.accounts[id]
	if !ok {
		return
	}
	acc.TxCount++
	acc.LevyPaid = acc.LevyPaid.Add(levyPaid)
	acc.LevyReceived = acc.LevyReceived.Add(levyReceived)
	acc.Balance = l.balances[id]
}

// Balance returns the current balance for id. Unknown ids resolve to
// zero; they are not an error.
func (l *Ledger) Balance(id string) decimal.Decimal {
	b, ok := l.balances[id]
	if !ok {
		return decimal.Zero
	}
	return b
}

// PendingCount returns the number of entries awaiting sealing.
func (l *Ledger) PendingCount() int { return len(l.pending) }

// Pending returns a copy of the unsealed entry set, in enqueue order.
func (l *Ledger) Pending() []entry.Entry {
	out := make([]entry.Entry, len(l.pending))
	copy(out, l.pending)
	return out
}

// ChainLength returns the number of sealed blocks, genesis included.
func (l *Ledger) ChainLength() int { return len(l.chain) }

// BlockAt returns the sealed block at index, or nil when out of range.
// The returned block must not be mutated.
func (l *Ledger) BlockAt(index int) *block.Block {
	if index < 0 || index >= len(l.chain) {
		return nil
	}
	return l.chain[index]
}

// Account returns the registry record for id, or nil when unregistered.
func (l *Ledger) Account(id string) *types.Account {
	return l.accounts[id]
}
