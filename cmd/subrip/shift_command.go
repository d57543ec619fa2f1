package main

import (
	"errors"

	"github.com/spf13/cobra"

	"subrip"
)

func newShiftCommand(ctx *commandContext) *cobra.Command {
	flags := &streamFlags{}
	var (
		hours        int
		minutes      int
		seconds      int
		milliseconds int
		ratio        float64
	)
	cmd := &cobra.Command{
		Use:   "shift <file>",
		Short: "Move every entry by a fixed offset, optionally rescaling first",
		Long: `Shift retimes every entry in the file. The ratio is applied to each
timecode first, then the offset built from --hours, --minutes, --seconds, and
--milliseconds is added. Offset components may be negative; results clamp at
00:00:00,000.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ratio <= 0 {
				return errors.New("ratio must be greater than zero")
			}
			file, err := openSubtitleFile(ctx, args[0], flags)
			if err != nil {
				return err
			}
			file.Shift(subrip.Shift{
				Hours:        hours,
				Minutes:      minutes,
				Seconds:      seconds,
				Milliseconds: milliseconds,
				Ratio:        ratio,
			})
			return writeOutput(cmd, file, flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&hours, "hours", 0, "Hours to add (may be negative)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes to add (may be negative)")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "Seconds to add (may be negative)")
	cmd.Flags().IntVar(&milliseconds, "milliseconds", 0, "Milliseconds to add (may be negative)")
	cmd.Flags().Float64Var(&ratio, "ratio", 1, "Playback-rate ratio applied before the offset")
	return cmd
}
