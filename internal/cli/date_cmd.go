package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mom-planner/pkg/duedate"
)

func newFormatDateCmd(app *App) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "format-date DATE",
		Short: "Show how a due date is displayed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			tag := localeFromEnv()
			if locale != "" {
				tag = duedate.ParseLocale(locale)
			}
			now := app.now()

			out := duedate.FormatDueDateIn(input, tag, now.Location())
			if badge := duedate.DueStatus(input, now, tag); badge != "" {
				out += " (" + badge + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "display locale, e.g. en-GB")
	return cmd
}
