package cmd

import (
	"os"

	"github.com/imns1ght/data-structures/internal/logger"
	"github.com/spf13/cobra"
)

const AppName = "hashtbl"

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - separate chaining hash table toolkit",
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(
		DefineBenchCommand(),
		DefineLoadCommand(),
		DefinePrimesCommand(),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command) *logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logger.New(os.Stderr, logger.ParseLevel(level))
}
