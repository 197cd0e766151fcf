package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLedgerConfig reads and parses a ledger.yml file
func LoadLedgerConfig(path string) (*LedgerConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[config] Failed to open file: %v", err)
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		log.Printf("[config] Failed to decode YAML: %v", err)
		return nil, err
	}

	cfg := cfgFile.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	log.Printf("[config] Loaded ledger config: creator=%s, accounts=%d, steps=%d, difficulty=%d",
		cfg.Creator, len(cfg.Accounts), len(cfg.Steps), cfg.Difficulty)
	return &cfg, nil
}

// Validate rejects configs that cannot produce a ledger.
func (c *LedgerConfig) Validate() error {
	if c.Creator == "" {
		return fmt.Errorf("ledger config: creator is required")
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("ledger config: starting_balance must be non-negative")
	}
	if c.Difficulty < 0 {
		return fmt.Errorf("ledger config: difficulty must be non-negative")
	}
	for i, step := range c.Steps {
		switch step.Kind {
		case "transfer", "levy", "gift":
		default:
			return fmt.Errorf("ledger config: step %d has unknown kind %q", i, step.Kind)
		}
	}
	return nil
}

func (c *LedgerConfig) applyDefaults() {
	if c.StartingBalance == 0 {
		c.StartingBalance, _ = DefaultStartingBalance.Float64()
	}
	if c.Difficulty == 0 {
		c.Difficulty = DefaultDifficulty
	}
	if c.SealReward == 0 {
		c.SealReward, _ = DefaultSealReward.Float64()
	}
	if c.Sealer == "" {
		c.Sealer = c.Creator
	}
	for i := range c.Steps {
		if c.Steps[i].Kind == "levy" && c.Steps[i].To == "" {
			c.Steps[i].To = LevyFund
		}
	}
}
