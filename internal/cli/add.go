package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bettercalldasappan/countdown/internal/countdown"
	"github.com/bettercalldasappan/countdown/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Event string
	Date  int64
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"add-event"},
		Short:   "Add a new event",
		Long: `Add a new event to the event file.

The date is the event's target moment as unix seconds.

Example:
  countdown add --event "trip to osaka" --date 1767225600`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Event, "event", "e", "", "name of the event")
	cmd.Flags().Int64VarP(&opts.Date, "date", "d", 0, "date of the event as unix seconds")
	cmd.MarkFlagRequired("event")
	cmd.MarkFlagRequired("date")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	if strings.TrimSpace(opts.Event) == "" {
		return NewExitError(ExitCommandError, "event name must not be empty")
	}
	if opts.Date < 0 || opts.Date > math.MaxUint32 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("date %d out of range: must be unix seconds in [0, %d]", opts.Date, math.MaxUint32))
	}

	ev := countdown.Event{Name: opts.Event, Time: uint32(opts.Date)}
	if err := store.Open(opts.ConfigPath).Append(ev); err != nil {
		return WrapExitError(ExitFailure, "couldn't store event", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Added(ev)
}
