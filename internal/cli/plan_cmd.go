package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"mom-planner/internal/cli/formatter"
	"mom-planner/internal/intake"
	"mom-planner/internal/plan"
	"mom-planner/internal/reminder"
	"mom-planner/pkg/duedate"
	"mom-planner/pkg/notify"
)

var errPDFUnreadable = errors.New(intake.PDFFallbackText)

type planOptions struct {
	file   string
	pdf    string
	specs  string
	tone   string
	watch  bool
	noEdit bool
}

func newPlanCmd(app *App) *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan [tasks...]",
		Short: "Create today's plan from your tasks",
		Long: `Create a time-blocked plan for today.

Tasks are read from the arguments, --file, --pdf or standard input.
With a terminal attached you can then set due dates and statuses,
and --watch keeps MOM running to remind you when each task starts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read tasks from a text file")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "read tasks from a PDF (e.g. a syllabus)")
	cmd.Flags().StringVarP(&opts.specs, "specs", "s", "", "extra constraints, e.g. \"class from 1-3 PM\"")
	cmd.Flags().StringVarP(&opts.tone, "tone", "t", "", "Neutral & Professional, Firm & Motivating or Gentle & Encouraging")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "stay running and send reminders at each start time")
	cmd.Flags().BoolVar(&opts.noEdit, "no-edit", false, "print the plan and skip the edit prompts")

	return cmd
}

func runPlan(cmd *cobra.Command, app *App, opts planOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	interactive := app.interactive()

	var confirm func(context.Context) (bool, error)
	if interactive {
		confirm = confirmNotifications
	}
	deps, err := app.Connect(ctx, confirm)
	if err != nil {
		return err
	}
	uc := deps.UseCase

	sess, err := uc.CreateSession(ctx)
	if err != nil {
		return err
	}
	id := sess.Session.ID

	text, err := readTasks(cmd, uc, id, opts, args, interactive)
	if err != nil {
		return err
	}

	specs, tone := opts.specs, opts.tone
	if interactive && strings.TrimSpace(text) == "" {
		if err := inputForm(&text, &specs, &tone).RunWithContext(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintln(errOut(cmd), formatter.Dim("MOM is thinking..."))
	res, err := uc.Generate(ctx, plan.GenerateInput{
		SessionID:      id,
		Input:          &text,
		Specifications: specs,
		Tone:           tone,
	})
	if err != nil {
		return userError(err)
	}

	locale := localeFromEnv()
	cards := plan.BuildCards(res.Session.Items, app.now(), locale)
	fmt.Fprint(out, formatter.FormatPlan(cards))

	if interactive && !opts.noEdit && len(cards) > 0 {
		if err := editLoop(ctx, cmd, app, uc, id, cards, locale); err != nil {
			return err
		}
	}

	if opts.watch {
		return watch(ctx, cmd, uc, deps, id)
	}
	return nil
}

// readTasks resolves the task text from, in order: --pdf, --file, arguments,
// and standard input when no terminal is attached.
func readTasks(cmd *cobra.Command, uc plan.UseCase, id string, opts planOptions, args []string, interactive bool) (string, error) {
	ctx := cmd.Context()
	switch {
	case opts.pdf != "":
		f, err := os.Open(opts.pdf)
		if err != nil {
			return "", err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return "", err
		}
		name := filepath.Base(opts.pdf)
		fmt.Fprintln(errOut(cmd), formatter.Dim(fmt.Sprintf("Parsing %s...", name)))
		res, err := uc.UploadPDF(ctx, plan.UploadPDFInput{SessionID: id, Filename: name, File: f, Size: info.Size()})
		if err != nil {
			return "", err
		}
		if res.ParseFailed {
			if !interactive {
				return "", errPDFUnreadable
			}
			// Leave the text empty so the input form opens for pasting.
			fmt.Fprintln(errOut(cmd), formatter.StyleRed.Render(intake.PDFFallbackText))
			return "", nil
		}
		return res.Session.Form.Text, nil

	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case len(args) > 0:
		return strings.Join(args, " "), nil

	case !interactive:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", nil
}

func editLoop(ctx context.Context, cmd *cobra.Command, app *App, uc plan.UseCase, id string, cards []plan.Card, locale language.Tag) error {
	out := cmd.OutOrStdout()
	for {
		action := actionDone
		if err := actionForm(&action).RunWithContext(ctx); err != nil {
			return err
		}
		if action == actionDone {
			return nil
		}

		index := 0
		if err := itemForm(cards, &index).RunWithContext(ctx); err != nil {
			return err
		}

		var res plan.SessionOutput
		var err error
		switch action {
		case actionDueDate:
			value := cards[index].DueDate
			if err := dueDateForm(&value).RunWithContext(ctx); err != nil {
				return err
			}
			res, err = uc.UpdateDueDate(ctx, plan.UpdateDueDateInput{SessionID: id, Index: index, DueDate: value})
		case actionStatus:
			value := string(cards[index].Status)
			if err := statusForm(&value).RunWithContext(ctx); err != nil {
				return err
			}
			res, err = uc.UpdateStatus(ctx, plan.UpdateStatusInput{SessionID: id, Index: index, Status: value})
		case actionNotify:
			n, nerr := uc.NotifyItem(ctx, plan.NotifyItemInput{SessionID: id, Index: index})
			switch {
			case nerr != nil:
				fmt.Fprintln(out, formatter.StyleRed.Render(userError(nerr).Error()))
			case n.Sent:
				fmt.Fprintln(out, formatter.StyleGreen.Render("Reminder sent."))
			default:
				fmt.Fprintln(out, formatter.FormatPermission(n.Permission))
			}
			continue
		}
		if err != nil {
			fmt.Fprintln(out, formatter.StyleRed.Render(userError(err).Error()))
			continue
		}

		cards = plan.BuildCards(res.Session.Items, app.now(), locale)
		fmt.Fprint(out, formatter.FormatPlan(cards))
	}
}

func watch(ctx context.Context, cmd *cobra.Command, uc plan.UseCase, deps *Deps, id string) error {
	if _, err := uc.SetReminders(ctx, plan.SetRemindersInput{SessionID: id, Enabled: true}); err != nil {
		return userError(err)
	}
	if perm := uc.Permission(ctx); perm != notify.PermissionGranted {
		fmt.Fprintln(errOut(cmd), formatter.FormatPermission(perm))
		return nil
	}

	fmt.Fprintln(errOut(cmd), formatter.Dim("Reminders on. Press Ctrl+C to stop."))
	ticker := reminder.NewTicker(uc, deps.ReminderInterval, deps.Location, deps.Logger)
	return ticker.Run(ctx)
}

// userError replaces internal failures with the message users are meant to see.
func userError(err error) error {
	switch {
	case errors.Is(err, plan.ErrGeneration):
		return errors.New(plan.GenerationFailedMessage)
	case errors.Is(err, plan.ErrEmptyInput):
		return errors.New(plan.EmptyInputMessage)
	case errors.Is(err, plan.ErrNotificationsBlocked):
		return errors.New("Notifications blocked. Please enable them in your system settings.")
	default:
		return err
	}
}

// localeFromEnv reads the POSIX locale, e.g. "en_GB.UTF-8".
func localeFromEnv() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return duedate.ParseLocale(strings.ReplaceAll(v, "_", "-"))
	}
	return duedate.ParseLocale("")
}
