package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bettercalldasappan/countdown/internal/countdown"
	"github.com/bettercalldasappan/countdown/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"

	// now supplies the reference instant, captured once per list run.
	now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the countdown root command. Running it with no
// subcommand lists the stored events that have not happened yet.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

// newRootCommand lets tests pin the reference instant.
func newRootCommand(now func() time.Time) *cobra.Command {
	opts := &RootOptions{now: now}

	var (
		orderToken string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Countdown to events you're looking forward to",
		Long: `Countdown to events you're looking forward to.

Events live in a small file in your home directory. Running countdown with
no arguments prints every event that hasn't happened yet, soonest first:

  2 days until trip to osaka
  14 days until release day

Use 'countdown add' to register a new event.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.ConfigPath == "" {
				path, err := store.DefaultPath()
				if err != nil {
					return WrapExitError(ExitFailure, "no event file location", err)
				}
				opts.ConfigPath = path
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") && limit < 0 {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid --limit %d: must not be negative", limit))
			}
			return runList(opts, orderToken, limit, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		fmt.Sprintf("event file path (default $HOME/%s)", store.DefaultFilename))
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Listing flags
	cmd.Flags().StringVarP(&orderToken, "order", "o", countdown.TokenAsc,
		fmt.Sprintf("ordering of the events returned (%s)", strings.Join(countdown.Tokens, "|")))
	cmd.Flags().IntVarP(&limit, "limit", "n", -1, "max number of events to display (default all)")

	cmd.AddCommand(NewAddCommand(opts))

	return cmd
}

func runList(opts *RootOptions, orderToken string, limit int, cmd *cobra.Command) error {
	order, err := countdown.ParseOrder(orderToken)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --order", err)
	}

	cfg, err := store.Open(opts.ConfigPath).Load()
	if err != nil {
		return WrapExitError(ExitFailure, "couldn't load events", err)
	}

	events := countdown.Applicable(opts.now(), cfg.Events, order, limit)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Events(events)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
