package main

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/tough-lang/tough-setup/internal/install"
	"github.com/tough-lang/tough-setup/internal/messages"
)

func newAddPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.AddPathUse,
		Short: messages.AddPathShort,
		Long:  messages.AddPathLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := addPathTarget(args)
			if err != nil {
				return err
			}
			dryRun := isDryRun(cmd)
			st, rec := maybeRecord(openEnvironmentStore(), dryRun)

			added, err := install.AppendToUserPath(st, dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dryRun {
				printDryRun(out, rec, install.PathDelimiter)
				return nil
			}
			if !added {
				_, _ = fmt.Fprintf(out, messages.AddPathPresentFmt, dir)
				return nil
			}
			_, _ = successColor.Fprintf(out, messages.AddPathAddedFmt, dir)
			_, _ = fmt.Fprintln(out, messages.AddPathNewShellNote)
			return nil
		},
	}
}

// addPathTarget returns the directory to add: the argument with ~ expanded,
// or the install directory when no argument is given.
func addPathTarget(args []string) (string, error) {
	if len(args) == 0 {
		s, err := loadSetup()
		if err != nil {
			return "", err
		}
		return s.paths.Dir, nil
	}
	dir, err := homedir.Expand(args[0])
	if err != nil {
		return "", fmt.Errorf(messages.ExpandDirFmt, args[0], err)
	}
	return dir, nil
}
