// Package cli wires the command surface: the interactive demo and a
// headless bench comparing the three synchronization strategies.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/config"
	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/logging"
	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/rainbow"
	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/tui"
)

const logFileName = "rainbows.log"

var (
	cfg    config.Config
	logger zerolog.Logger
)

// NewRootCmd creates the root command. Running it bare starts the
// interactive demo; `bench` runs the strategies headlessly.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rainbows",
		Short: "Three ways to put rainbows on screen",
		Long: `rainbows contrasts three strategies for inserting rows into a live view:
full redraw, batched redraw through an off-screen fragment, and targeted
single-row insertion. Watch the reflow counts and the animation phases to
see what each strategy costs and what it destroys.`,
		Example: `  # interactive demo with 50 rainbows pre-filled
  rainbows --count 50

  # compare the strategies over a 500-row list
  rainbows bench --items 500`,
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			rainbow.SetPalette(cfg.Palette)

			level := cfg.LogLevel
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = "debug"
			}
			logger = logging.New(level, nil)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count <= 0 {
				count = cfg.DefaultCount
			}

			// The alt screen owns the terminal, so the interactive run logs
			// to a file instead of stderr.
			log := zerolog.Nop()
			f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				defer f.Close()
				log = logging.New(logger.GetLevel().String(), f)
			}
			return tui.Run(log, count)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.Flags().Int("count", 0, "initial rainbow count (0 = config default)")
	cmd.AddCommand(newBenchCmd())
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(ver string) int {
	if err := NewRootCmd(ver).Execute(); err != nil {
		fail(err.Error())
		return 1
	}
	return 0
}
