package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tough-lang/tough-setup/internal/install"
	"github.com/tough-lang/tough-setup/internal/messages"
	"github.com/tough-lang/tough-setup/internal/store"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSetup()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ext := s.cfg.Association.Extension

			userClasses := openUserClassesStore()
			classes := store.Overlay{Top: userClasses, Base: openClassesStore()}
			command, err := install.ResolveCommand(classes, ext)
			if err != nil {
				_, _ = warnColor.Fprintf(out, messages.StatusNotAssociatedFmt, ext, err)
			} else {
				_, _ = fmt.Fprintf(out, messages.StatusAssociatedFmt, ext, command)
			}
			if identifier, err := userClasses.Get(ext); err == nil {
				_, _ = warnColor.Fprintf(out, messages.StatusUserOverrideFmt, ext, identifier)
			}

			onPath, err := install.PathContains(openEnvironmentStore(), s.paths.Dir)
			switch {
			case err != nil:
				_, _ = warnColor.Fprintf(out, messages.StatusPathUnknownFmt, err)
			case onPath:
				_, _ = fmt.Fprintf(out, messages.StatusPathFmt, s.paths.Dir, messages.StatusYes)
			default:
				_, _ = fmt.Fprintf(out, messages.StatusPathFmt, s.paths.Dir, messages.StatusNo)
			}
			return nil
		},
	}
}
