package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"subrip"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

const (
	metadataIndent     = "  "
	metadataLabelWidth = 14
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	flags := &streamFlags{}
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print subtitle entries and file metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := openSubtitleFile(ctx, args[0], flags)
			if err != nil {
				return err
			}
			return renderShow(cmd.OutOrStdout(), file)
		},
	}
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Input character encoding (default: BOM detection with UTF-8 fallback)")
	cmd.Flags().StringVar(&flags.onError, "on-error", "", "Malformed block policy: pass, log, or raise")
	return cmd
}

func renderShow(w io.Writer, file *subrip.File) error {
	colorize := shouldColorize(w)

	for _, line := range renderSectionHeader(file.Path, colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, metadataLine("Encoding", file.Encoding, colorize))
	fmt.Fprintln(w, metadataLine("Line endings", eolLabel(file.EOL), colorize))
	fmt.Fprintln(w, metadataLine("Entries", strconv.Itoa(file.Len()), colorize))

	items := file.Items()
	if len(items) > 0 {
		span := fmt.Sprintf("%s --> %s", items[0].Start, items[len(items)-1].End)
		fmt.Fprintln(w, metadataLine("Span", span, colorize))
	}
	fmt.Fprintln(w)

	if len(items) == 0 {
		fmt.Fprintln(w, "No subtitle entries.")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.Index),
			item.Start.String(),
			item.End.String(),
			item.Duration().String(),
			item.Text,
		})
	}
	fmt.Fprintln(w, renderTable([]string{"#", "START", "END", "DURATION", "TEXT"}, rows, 0, 3))
	return nil
}

func metadataLine(label, value string, colorize bool) string {
	name := fmt.Sprintf("%-*s", metadataLabelWidth, label+":")
	if colorize {
		name = ansiBlue + name + ansiReset
	}
	return metadataIndent + name + " " + value
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
