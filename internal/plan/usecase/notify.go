package usecase

import (
	"context"
	"errors"
	"time"

	"mom-planner/internal/model"
	"mom-planner/internal/plan"
	"mom-planner/internal/plan/repository"
	"mom-planner/pkg/notify"
)

// NotifyItem sends the item's reminder now. A default permission is requested
// first; a denied one blocks the send.
func (uc *implUseCase) NotifyItem(ctx context.Context, input plan.NotifyItemInput) (plan.NotifyOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.NotifyOutput{}, err
	}
	item, err := sess.Item(input.Index)
	if err != nil {
		return plan.NotifyOutput{Permission: uc.gate.State()}, err
	}

	perm := uc.gate.State()
	if perm == notify.PermissionDefault {
		perm, err = uc.gate.Request(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "plan.usecase.NotifyItem: permission request: %v", err)
			return plan.NotifyOutput{Permission: perm, Item: item}, err
		}
	}

	out := plan.NotifyOutput{Permission: perm, Item: item}
	switch perm {
	case notify.PermissionDenied:
		return out, plan.ErrNotificationsBlocked
	case notify.PermissionGranted:
	default:
		// The user dismissed the prompt.
		return out, nil
	}

	if err := uc.send(ctx, item); err != nil {
		uc.l.Errorf(ctx, "plan.usecase.NotifyItem: %v", err)
		return out, err
	}
	out.Sent = true
	return out, nil
}

func (uc *implUseCase) send(ctx context.Context, item model.PlanItem) error {
	return uc.notifier.Notify(ctx, notify.Notification{
		Title: notify.Title(item.Time),
		Body:  item.NotificationText,
		Icon:  uc.cfg.Icon,
	})
}

func (uc *implUseCase) Permission(ctx context.Context) notify.Permission {
	return uc.gate.State()
}

func (uc *implUseCase) RequestPermission(ctx context.Context) (notify.Permission, error) {
	perm, err := uc.gate.Request(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.RequestPermission: %v", err)
	}
	return perm, err
}

// SetReminders turns the timed reminder watch of a session on or off.
// Enabling requires permission to be granted, or grantable.
func (uc *implUseCase) SetReminders(ctx context.Context, input plan.SetRemindersInput) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.SessionOutput{}, err
	}
	if !input.Enabled {
		return uc.output(sess.SetWatch(false)), nil
	}

	perm := uc.gate.State()
	if perm == notify.PermissionDefault {
		if perm, err = uc.gate.Request(ctx); err != nil {
			return uc.output(sess.View()), err
		}
	}
	if perm == notify.PermissionDenied {
		return uc.output(sess.View()), plan.ErrNotificationsBlocked
	}
	return uc.output(sess.SetWatch(perm == notify.PermissionGranted)), nil
}

// RunReminders fires the reminders that are due at now across all watching
// sessions. It never prompts for permission.
func (uc *implUseCase) RunReminders(ctx context.Context, now time.Time) (int, error) {
	if uc.gate.State() != notify.PermissionGranted {
		return 0, nil
	}

	sessions, err := uc.repo.ListSessions(ctx, repository.ListSessionsOptions{Watching: true})
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.RunReminders: %v", err)
		return 0, err
	}

	sent := 0
	var errs []error
	for _, sess := range sessions {
		for _, e := range sess.DueReminders(now, uc.cfg.ReminderTolerance) {
			if err := uc.send(ctx, e.Item); err != nil {
				errs = append(errs, err)
				continue
			}
			sent++
		}
	}
	if len(errs) > 0 {
		uc.l.Warnf(ctx, "plan.usecase.RunReminders: %d of %d failed", len(errs), sent+len(errs))
	}
	return sent, errors.Join(errs...)
}
