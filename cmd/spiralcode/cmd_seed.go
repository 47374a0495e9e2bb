package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppipada/spiralcode-go/internal/config"
	"github.com/ppipada/spiralcode-go/seedkeyring"
)

// seedCmd groups filler seed management
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage the filler seed kept in the OS keyring",
}

// seedResetCmd deletes the stored seed
var seedResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the keyring filler seed",
	Long: `Deletes the filler seed stored in the OS keyring. The next run with
filler.source set to keyring creates a fresh one.`,
	Args: cobra.NoArgs,
	RunE: runSeedReset,
}

// configCmd groups config file management
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the spiralcode config file",
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the --config path",
	Args:  cobra.NoArgs,
	// Skips loading the existing file so a broken config can be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(config.DefaultConfig().Logging.Level)
	},
	RunE: runConfigInit,
}

func runSeedReset(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	store := seedkeyring.New(c.Filler.KeyringService, c.Filler.KeyringUser)
	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "filler seed removed from %s/%s\n", store.Service, store.User)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return errors.New("no config path given")
	}
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("config already exists at %s", configPath)
	}
	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
