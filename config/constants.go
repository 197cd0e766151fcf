package config

import "github.com/shopspring/decimal"

// Synthetic identifiers. Entries sent by these never debit a balance.
const (
	GenesisSender = "Genesis"
	SystemSender  = "System"
	LevyFund      = "LevyFund"
)

const (
	// GenesisPrevHash is the previous-hash value of block 0.
	GenesisPrevHash = "0"

	// TimeLayout is the timestamp format used in hash preimages and
	// exported snapshots. Second precision: recomputing a hash from the
	// stored timestamp must reproduce it exactly.
	TimeLayout = "2006-01-02 15:04:05"

	// DefaultDifficulty is the number of leading zero hex characters a
	// sealed block's hash must carry.
	DefaultDifficulty = 2
)

var (
	// LevyRate is the obligatory 2.5% deduction, computed on the sender's
	// balance at transaction-creation time, never on the transfer amount.
	LevyRate = decimal.RequireFromString("0.025")

	// DefaultSealReward is credited to whoever seals a block.
	DefaultSealReward = decimal.RequireFromString("10")

	// DefaultStartingBalance is the balance a participant joins with when
	// no explicit balance is given.
	DefaultStartingBalance = decimal.RequireFromString("200")
)
