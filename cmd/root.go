package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"zakatchain/logx"
)

var rootCmd = &cobra.Command{
	Use:   "zakatchain",
	Short: "ZakatChain ledger CLI",
	Long:  "Command line interface for running and inspecting a ZakatChain levy-ledger simulation.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
