package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRewriteCommand(ctx *commandContext) *cobra.Command {
	flags := &streamFlags{}
	var toEncoding string
	cmd := &cobra.Command{
		Use:   "rewrite <file>",
		Short: "Re-serialize a subtitle file in canonical form",
		Long: `Rewrite parses a file and serializes it back, normalizing period
millisecond separators to commas and collapsing extra blank lines. --eol
changes the line terminator and --to-encoding transcodes the output; with
neither, the source encoding and terminator are preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := openSubtitleFile(ctx, args[0], flags)
			if err != nil {
				return err
			}
			if name := strings.TrimSpace(toEncoding); name != "" {
				file.Encoding = name
			}
			return writeOutput(cmd, file, flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&toEncoding, "to-encoding", "", "Transcode the output to this encoding")
	return cmd
}
