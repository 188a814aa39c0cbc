package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tradebot",
		Short:         "Trade-offer coordinator for the collateral ledger",
		Long:          "tradebot keeps one platform session alive, builds and tracks trade offers for ledger deals, and exposes a small HTTP control plane.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newStatusCmd(app),
		newConfirmCmd(app),
		newCodeCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
