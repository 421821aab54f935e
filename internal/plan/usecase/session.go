package usecase

import (
	"context"
	"errors"
	"fmt"

	"mom-planner/internal/model"
	"mom-planner/internal/plan"
	"mom-planner/pkg/pdftext"
)

var errUploadTooLarge = errors.New("upload exceeds size limit")

func (uc *implUseCase) output(view plan.SessionView) plan.SessionOutput {
	return plan.SessionOutput{Session: view, Permission: uc.gate.State()}
}

func (uc *implUseCase) CreateSession(ctx context.Context) (plan.SessionOutput, error) {
	sess, err := uc.repo.CreateSession(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.CreateSession: %v", err)
		return plan.SessionOutput{}, err
	}
	return uc.output(sess.View()), nil
}

func (uc *implUseCase) GetSession(ctx context.Context, id string) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		return plan.SessionOutput{}, err
	}
	return uc.output(sess.View()), nil
}

func (uc *implUseCase) SetInput(ctx context.Context, input plan.SetInputInput) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.SessionOutput{}, err
	}
	view, err := sess.SetText(input.Text)
	return uc.output(view), err
}

// UploadPDF replaces the input text with the text of an uploaded PDF. A file
// that cannot be read yields the fallback text, not an error.
func (uc *implUseCase) UploadPDF(ctx context.Context, input plan.UploadPDFInput) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.SessionOutput{}, err
	}

	if err := sess.BeginParse(input.Filename); err != nil {
		return uc.output(sess.View()), err
	}

	var text string
	if uc.cfg.MaxUploadBytes > 0 && input.Size > uc.cfg.MaxUploadBytes {
		err = fmt.Errorf("%w: %d bytes", errUploadTooLarge, input.Size)
	} else {
		text, err = pdftext.Extract(input.File, input.Size)
	}
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.UploadPDF: %s: %v", input.Filename, err)
	}

	out := uc.output(sess.FinishParse(text, err))
	out.ParseFailed = err != nil
	return out, nil
}

func (uc *implUseCase) UpdateDueDate(ctx context.Context, input plan.UpdateDueDateInput) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.SessionOutput{}, err
	}
	view, err := sess.SetDueDate(input.Index, input.DueDate)
	return uc.output(view), err
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, input plan.UpdateStatusInput) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.SessionOutput{}, err
	}
	status, ok := model.ParseStatus(input.Status)
	if !ok {
		return uc.output(sess.View()), plan.ErrInvalidStatus
	}
	view, err := sess.SetStatus(input.Index, status)
	return uc.output(view), err
}
