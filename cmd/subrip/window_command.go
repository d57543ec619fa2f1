package main

import (
	"strings"

	"github.com/spf13/cobra"

	"subrip"
)

func newWindowCommand(ctx *commandContext) *cobra.Command {
	flags := &streamFlags{}
	var startsBefore, startsAfter, endsBefore, endsAfter string
	cmd := &cobra.Command{
		Use:   "window <file>",
		Short: "Keep only the entries inside a time window",
		Long: `Window filters the file down to the entries matching every given bound.
Bounds take SubRip timecodes (HH:MM:SS,mmm) and compare strictly, so an entry
starting exactly at the --starts-after timecode is excluded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := windowBounds(startsBefore, startsAfter, endsBefore, endsAfter)
			if err != nil {
				return err
			}
			file, err := openSubtitleFile(ctx, args[0], flags)
			if err != nil {
				return err
			}
			return writeOutput(cmd, file.Slice(bounds...), flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&startsBefore, "starts-before", "", "Keep entries starting before this timecode")
	cmd.Flags().StringVar(&startsAfter, "starts-after", "", "Keep entries starting after this timecode")
	cmd.Flags().StringVar(&endsBefore, "ends-before", "", "Keep entries ending before this timecode")
	cmd.Flags().StringVar(&endsAfter, "ends-after", "", "Keep entries ending after this timecode")
	return cmd
}

func windowBounds(startsBefore, startsAfter, endsBefore, endsAfter string) ([]subrip.Bound, error) {
	var bounds []subrip.Bound
	add := func(value string, bound func(subrip.Time) subrip.Bound) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		at, err := subrip.ParseTime(value)
		if err != nil {
			return err
		}
		bounds = append(bounds, bound(at))
		return nil
	}
	if err := add(startsBefore, subrip.StartsBefore); err != nil {
		return nil, err
	}
	if err := add(startsAfter, subrip.StartsAfter); err != nil {
		return nil, err
	}
	if err := add(endsBefore, subrip.EndsBefore); err != nil {
		return nil, err
	}
	if err := add(endsAfter, subrip.EndsAfter); err != nil {
		return nil, err
	}
	return bounds, nil
}
