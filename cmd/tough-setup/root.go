package main

import (
	"github.com/spf13/cobra"

	"github.com/tough-lang/tough-setup/internal/messages"
)

const flagDryRun = "dry-run"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().Bool(flagDryRun, false, messages.RootFlagDryRun)

	cmd.AddCommand(
		newAssociateCmd(),
		newAddPathCmd(),
		newStatusCmd(),
	)
	return cmd
}

func isDryRun(cmd *cobra.Command) bool {
	dryRun, err := cmd.Flags().GetBool(flagDryRun)
	return err == nil && dryRun
}
