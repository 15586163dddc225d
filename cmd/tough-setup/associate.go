package main

import (
	"github.com/spf13/cobra"

	"github.com/tough-lang/tough-setup/internal/install"
	"github.com/tough-lang/tough-setup/internal/messages"
)

func newAssociateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.AssociateUse,
		Short: messages.AssociateShort,
		Long:  messages.AssociateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSetup()
			if err != nil {
				return err
			}
			dryRun := isDryRun(cmd)
			st, rec := maybeRecord(openClassesStore(), dryRun)

			assoc := s.cfg.Association
			result, err := install.Associate(installSystem, st, assoc.Extension, s.paths.Launcher, assoc.Identifier)
			if err != nil {
				return err
			}
			if result.Replaced != "" {
				_, _ = warnColor.Fprintf(cmd.ErrOrStderr(), messages.AssociateReplacedFmt, assoc.Extension, result.Replaced, assoc.Identifier)
			}
			if dryRun {
				printDryRun(cmd.OutOrStdout(), rec, "")
				return nil
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), messages.AssociateSuccessFmt, assoc.Extension, assoc.Identifier, result.Record.CommandTemplate)
			return nil
		},
	}
}
