// Overlayprobe opens a tinted full-screen overlay and logs the input
// that the overlay receives. Pressing escape releases the input and
// exits.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlayprobe",
		Short: "Open a Wayland overlay and log its input",
		Long: `Overlayprobe covers the screen with a translucent layer-shell overlay,
grabs keyboard focus, and logs pointer, touch, tablet, and keyboard
input. Press escape to release the input and exit.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}

			logger := log.NewWithOptions(os.Stderr, log.Options{
				Level:           cfg.Level(),
				ReportTimestamp: true,
			})
			return run(cmd.Context(), cfg, logger)
		},
	}
	addFlags(cmd.Flags())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
