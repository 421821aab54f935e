// Package cli implements the mom command line.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"mom-planner/internal/plan"
	"mom-planner/pkg/log"
)

// Deps is what the model-backed commands need. It is built lazily so that
// offline commands run without credentials.
type Deps struct {
	UseCase          plan.UseCase
	ReminderInterval time.Duration
	Location         *time.Location
	Logger           log.Logger
}

// ConnectFunc builds Deps. confirm asks the user for notification permission;
// it is nil when there is no terminal to ask on.
type ConnectFunc func(ctx context.Context, confirm func(ctx context.Context) (bool, error)) (*Deps, error)

// App holds what the commands are wired to.
type App struct {
	Connect       ConnectFunc
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "mom" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mom",
		Short:         "MOM turns your to-do list into a daily plan",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newExtractCmd(),
		newFormatDateCmd(app),
	)

	return root
}

func errOut(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}
