package main

import (
	"github.com/spf13/cobra"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	flags := &streamFlags{}
	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Sort entries by time and renumber them from 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := openSubtitleFile(ctx, args[0], flags)
			if err != nil {
				return err
			}
			file.CleanIndexes()
			return writeOutput(cmd, file, flags.output)
		},
	}
	flags.register(cmd)
	return cmd
}
