package main

import (
	"errors"

	"github.com/spf13/cobra"

	"subrip"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	flags := &streamFlags{}
	var from, to float64
	cmd := &cobra.Command{
		Use:   "rate <file>",
		Short: "Retime entries from one frame rate to another",
		Long: `Rate corrects timing for a video whose frame rate changed, for example a
23.976 fps rip of a 25 fps broadcast. Every timecode is scaled by TO/FROM.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from <= 0 || to <= 0 {
				return errors.New("frame rates must be greater than zero")
			}
			file, err := openSubtitleFile(ctx, args[0], flags)
			if err != nil {
				return err
			}
			file.Shift(subrip.Shift{Ratio: to / from})
			return writeOutput(cmd, file, flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&from, "from", 0, "Frame rate the timecodes were authored for")
	cmd.Flags().Float64Var(&to, "to", 0, "Frame rate to retime to")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}
