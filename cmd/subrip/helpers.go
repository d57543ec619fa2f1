package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"subrip"
	"subrip/internal/config"
	"subrip/internal/fileutil"
)

// streamFlags are the input/output controls shared by every command that
// rewrites a subtitle file.
type streamFlags struct {
	output   string
	encoding string
	eol      string
	onError  string
}

func (f *streamFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Destination path, or - for stdout (default: rewrite the input in place)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Input character encoding (default: BOM detection with UTF-8 fallback)")
	cmd.Flags().StringVar(&f.eol, "eol", "", "Output line terminator: lf, crlf, or cr (default: keep the source terminator)")
	cmd.Flags().StringVar(&f.onError, "on-error", "", "Malformed block policy: pass, log, or raise")
}

// fileOptions merges command flags with configuration defaults into library
// options. Flags win over the config file.
func fileOptions(ctx *commandContext, f *streamFlags) ([]subrip.Option, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}

	var opts []subrip.Option

	encoding := strings.TrimSpace(f.encoding)
	if encoding == "" {
		encoding = cfg.Defaults.Encoding
	}
	if encoding != "" {
		opts = append(opts, subrip.WithEncoding(encoding))
	}

	eolName := strings.TrimSpace(f.eol)
	if eolName == "" {
		eolName = cfg.Defaults.EOL
	}
	eol, err := parseEOL(eolName)
	if err != nil {
		return nil, err
	}
	if eol != "" {
		opts = append(opts, subrip.WithEOL(eol))
	}

	policyName := strings.TrimSpace(f.onError)
	if policyName == "" {
		policyName = cfg.Defaults.OnError
	}
	policy, err := parseErrorHandling(policyName)
	if err != nil {
		return nil, err
	}
	opts = append(opts, subrip.WithErrorHandling(policy))
	if policy == subrip.ErrorLog {
		opts = append(opts, subrip.WithLogger(ctx.logger()))
	}

	return opts, nil
}

// openSubtitleFile loads one subtitle file with the merged flag/config
// options. Open stores the resolved encoding and terminator on the File, so
// a later write round-trips them without repeating the options.
func openSubtitleFile(ctx *commandContext, path string, f *streamFlags) (*subrip.File, error) {
	opts, err := fileOptions(ctx, f)
	if err != nil {
		return nil, err
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return subrip.Open(expanded, opts...)
}

// writeOutput routes the rewritten collection to the flag destination:
// stdout for "-", the named path, or an in-place replacement of the source.
func writeOutput(cmd *cobra.Command, file *subrip.File, outputFlag string) error {
	target := strings.TrimSpace(outputFlag)
	switch target {
	case "-":
		return file.Write(cmd.OutOrStdout())
	case "":
		if err := saveInPlace(file); err != nil {
			return err
		}
		target = file.Path
	default:
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return err
		}
		if err := file.Save(expanded); err != nil {
			return err
		}
		target = expanded
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", file.Len(), target)
	return nil
}

// saveInPlace replaces the source file atomically, so a failed write never
// truncates it.
func saveInPlace(file *subrip.File) error {
	if file.Path == "" {
		return errors.New("no destination: the collection has no source path (use --output)")
	}
	return fileutil.ReplaceFile(file.Path, func(w io.Writer) error {
		return file.Write(w)
	})
}

func parseEOL(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	case "cr":
		return "\r", nil
	default:
		return "", fmt.Errorf("eol must be one of lf, crlf, cr; got %q", name)
	}
}

func eolLabel(eol string) string {
	switch eol {
	case "\n":
		return "lf"
	case "\r\n":
		return "crlf"
	case "\r":
		return "cr"
	case "":
		return "platform default"
	default:
		return fmt.Sprintf("%q", eol)
	}
}

func parseErrorHandling(name string) (subrip.ErrorHandling, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pass":
		return subrip.ErrorPass, nil
	case "log":
		return subrip.ErrorLog, nil
	case "raise":
		return subrip.ErrorRaise, nil
	default:
		return subrip.ErrorPass, fmt.Errorf("on-error must be one of pass, log, raise; got %q", name)
	}
}
