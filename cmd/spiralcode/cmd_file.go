package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	spiralcode "github.com/ppipada/spiralcode-go"
	"github.com/ppipada/spiralcode-go/encdec"
	"github.com/ppipada/spiralcode-go/linefile"
)

var (
	outputPath string
	overwrite  bool
	report     bool
)

// encodeFileCmd encodes every line of a file
var encodeFileCmd = &cobra.Command{
	Use:   "encode-file [input]",
	Short: "Encode every line of a text file",
	Long: `Reads one message per line, encodes each one and saves the results in
the same order. Lines that fail are saved as FE::<line> and do not stop the run.

Example:
  spiralcode encode-file messages.txt -o secret.txt
  spiralcode encode-file messages.txt --report > report.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(cmd, args[0], spiralcode.OpEncode)
	},
}

// decodeFileCmd decodes every line of a file
var decodeFileCmd = &cobra.Command{
	Use:   "decode-file [input]",
	Short: "Decode every line of a text file",
	Long: `Reads one encoded string per line, decodes each one and saves the results
in the same order. Lines that fail are saved as FD::<line>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(cmd, args[0], spiralcode.OpDecode)
	},
}

func runFile(cmd *cobra.Command, input string, op spiralcode.Operation) error {
	c := currentConfig()

	lines, err := linefile.Load(input)
	if err != nil {
		return err
	}

	codec, err := newCodec()
	if err != nil {
		return err
	}

	var result *spiralcode.BatchResult
	switch op {
	case spiralcode.OpEncode:
		result, err = codec.EncodeBatch(lines)
	case spiralcode.OpDecode:
		result, err = codec.DecodeBatch(lines)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return err
	}

	target, err := resolveOutputPath(outputPath, c.Output.Dir, string(op)+"d")
	if err != nil {
		return err
	}
	replace := overwrite || c.Output.Overwrite
	if err := linefile.Save(target, result.Outputs(), replace); err != nil {
		return err
	}
	currentLogger().Info("results saved",
		zap.String("path", target),
		zap.Int("lines", len(result.Lines)),
		zap.Int("failures", result.Failures()))

	if report {
		return encdec.JSONEncoderDecoder{}.Encode(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d lines to %s (%d failed)\n",
		len(result.Lines), target, result.Failures())
	return nil
}

// resolveOutputPath returns explicit when set, else a generated name for kind
// inside dir.
func resolveOutputPath(explicit, dir, kind string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	name, err := linefile.NewOutputName(kind)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name.FileName), nil
}
