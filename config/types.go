package config

// AccountSeed registers one participant with a starting balance.
type AccountSeed struct {
	ID      string  `yaml:"id"`
	Balance float64 `yaml:"balance"`
}

// TransferStep is one scripted ledger operation in a simulation config.
// Kind is one of "transfer", "levy", "gift".
type TransferStep struct {
	Kind   string  `yaml:"kind"`
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Amount float64 `yaml:"amount"`
}

// LedgerConfig holds the configuration from ledger.yml
type LedgerConfig struct {
	Creator         string         `yaml:"creator"`
	StartingBalance float64        `yaml:"starting_balance"`
	Difficulty      int            `yaml:"difficulty"`
	SealReward      float64        `yaml:"seal_reward"`
	Accounts        []AccountSeed  `yaml:"accounts"`
	Steps           []TransferStep `yaml:"steps"`
	Sealer          string         `yaml:"sealer"`
}

// ConfigFile is the top-level structure for ledger.yml
type ConfigFile struct {
	Config LedgerConfig `yaml:"config"`
}
