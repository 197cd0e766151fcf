package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLedgerConfig(t *testing.T) {
	path := writeConfig(t, `
config:
  creator: "2021-CS-001"
  starting_balance: 500
  difficulty: 3
  seal_reward: 25
  sealer: "2021-CS-002"
  accounts:
    - id: "2021-CS-002"
      balance: 200
  steps:
    - kind: transfer
      from: "2021-CS-001"
      to: "2021-CS-002"
      amount: 50
`)

	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "2021-CS-001", cfg.Creator)
	assert.Equal(t, 500.0, cfg.StartingBalance)
	assert.Equal(t, 3, cfg.Difficulty)
	assert.Equal(t, 25.0, cfg.SealReward)
	assert.Equal(t, "2021-CS-002", cfg.Sealer)
	require.Len(t, cfg.Accounts, 1)
	require.Len(t, cfg.Steps, 1)
}

func TestLoadLedgerConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
config:
  creator: "C1"
  steps:
    - kind: levy
      from: "C1"
`)

	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.StartingBalance)
	assert.Equal(t, DefaultDifficulty, cfg.Difficulty)
	assert.Equal(t, 10.0, cfg.SealReward)
	assert.Equal(t, "C1", cfg.Sealer, "sealer defaults to the creator")
	assert.Equal(t, LevyFund, cfg.Steps[0].To, "levy steps default to the levy fund")
}

func TestLoadLedgerConfigRejectsMissingCreator(t *testing.T) {
	path := writeConfig(t, `
config:
  starting_balance: 100
`)

	_, err := LoadLedgerConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creator")
}

func TestLoadLedgerConfigRejectsUnknownStepKind(t *testing.T) {
	path := writeConfig(t, `
config:
  creator: "C1"
  steps:
    - kind: teleport
      from: "C1"
      to: "C2"
`)

	_, err := LoadLedgerConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestLoadLedgerConfigMissingFile(t *testing.T) {
	_, err := LoadLedgerConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
