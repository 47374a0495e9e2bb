package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	spiralcode "github.com/ppipada/spiralcode-go"
	"github.com/ppipada/spiralcode-go/filler"
	"github.com/ppipada/spiralcode-go/internal/config"
	"github.com/ppipada/spiralcode-go/internal/logging"
	"github.com/ppipada/spiralcode-go/seedkeyring"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spiralcode",
	Short: "Hide messages along a spiral in a square letter grid",
	Long: `spiralcode writes a message along an inward spiral path of an odd
square grid, fills the remaining cells with random letters and prints the grid
row by row as one string. Decoding replays the same spiral.

This is obfuscation, not encryption: the path is fixed and public.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return setupLogger(cfg.Logging.Level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "spiralcode.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	encodeCmd.Flags().IntVarP(&gridSize, "size", "s", 0, "Grid size, odd, 3 to 31 (default: smallest that fits)")

	for _, c := range []*cobra.Command{encodeFileCmd, decodeFileCmd} {
		c.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: generated name in output.dir)")
		c.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing output file")
		c.Flags().BoolVar(&report, "report", false, "Print a JSON report of every line to stdout")
	}

	configInitCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing config file")

	seedCmd.AddCommand(seedResetCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeFileCmd)
	rootCmd.AddCommand(decodeFileCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	if verbose {
		level = "debug"
	}
	l, err := logging.New(level)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// currentConfig returns the loaded config, or defaults when a command runs
// without the root pre-run (tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// newFillerSource builds the filler source selected in the config.
func newFillerSource(c *config.Config) (filler.Source, error) {
	switch c.Filler.Source {
	case config.FillerRandom:
		return filler.NewRandom()
	case config.FillerSeeded:
		return filler.NewSeeded(c.Filler.Seed)
	case config.FillerKeyring:
		seed, err := seedkeyring.New(c.Filler.KeyringService, c.Filler.KeyringUser).LoadOrCreate()
		if err != nil {
			return nil, err
		}
		return filler.NewChaCha8(seed)
	default:
		return nil, fmt.Errorf("unknown filler source %q", c.Filler.Source)
	}
}

func newCodec() (*spiralcode.Codec, error) {
	c := currentConfig()
	src, err := newFillerSource(c)
	if err != nil {
		return nil, fmt.Errorf("failed to set up filler: %w", err)
	}
	return spiralcode.New(
		spiralcode.WithFillerSource(src),
		spiralcode.WithLogger(currentLogger()),
	)
}
