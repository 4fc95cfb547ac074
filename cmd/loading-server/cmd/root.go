package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/corey/loading-server/internal/app"
)

// Process seams, swapped out in tests.
var (
	getenv     = os.Getenv
	baseDir    = app.ExecutableDir
	fileSystem afero.Fs
	logger     *logrus.Logger
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loading-server [file]",
		Short: "Serve one HTML page for every request",
		// The only input is an optional file name; anything that looks
		// like a flag is a file name too.
		DisableFlagParsing: true,
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runServe,
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runServe(cmd *cobra.Command, args []string) error {
	dir, err := baseDir()
	if err != nil {
		return err
	}

	cfg := app.LoadConfig(dir, args, getenv)
	cfg.Fs = fileSystem
	cfg.Logger = logger

	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}
