package cmd

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"

	"zakatchain/config"
	"zakatchain/ledger"
)

// renderLedger prints the dashboard view: headline metrics, balances and
// the registry table.
func renderLedger(l *ledger.Ledger) {
	stats := l.Statistics()

	validity := pterm.Green("valid")
	if !stats.ChainValid {
		validity = pterm.Red("INVALID")
	}
	pterm.DefaultSection.Println("Chain overview")
	pterm.Printfln("Blocks: %d  Entries: %d  Levy collected: %s  Chain: %s",
		stats.TotalBlocks, stats.TotalEntries, stats.TotalLevy.String(), validity)
	pterm.Printfln("Accounts: %d registered, %d active", stats.TotalAccounts, stats.ActiveAccounts)

	balanceRows := pterm.TableData{{"Account", "Balance"}}
	for _, id := range sortedKeys(stats.Balances) {
		balanceRows = append(balanceRows, []string{id, stats.Balances[id].String()})
	}
	pterm.DefaultSection.Println("Balances")
	_ = pterm.DefaultTable.WithHasHeader().WithData(balanceRows).Render()

	accountRows := pterm.TableData{{"Account", "Joined", "Txs", "Levy paid", "Levy received"}}
	for _, id := range sortedKeys(stats.Accounts) {
		acc := stats.Accounts[id]
		accountRows = append(accountRows, []string{
			acc.Address,
			acc.JoinedAt.Format(config.TimeLayout),
			fmt.Sprintf("%d", acc.TxCount),
			acc.LevyPaid.String(),
			acc.LevyReceived.String(),
		})
	}
	pterm.DefaultSection.Println("Registry")
	_ = pterm.DefaultTable.WithHasHeader().WithData(accountRows).Render()
}

// renderHistory prints every sealed entry with its block tag.
func renderHistory(l *ledger.Ledger) {
	rows := pterm.TableData{{"Block", "Kind", "Sender", "Receiver", "Amount", "Levy", "Time"}}
	for tagged := range l.History() {
		rows = append(rows, []string{
			fmt.Sprintf("%d", tagged.BlockIndex),
			string(tagged.Kind),
			tagged.Sender,
			tagged.Receiver,
			tagged.Amount.String(),
			tagged.Levy.String(),
			tagged.Timestamp.Format(config.TimeLayout),
		})
	}
	pterm.DefaultSection.Println("History")
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
