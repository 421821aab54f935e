package usecase

import (
	"context"
	"errors"
	"strings"

	"mom-planner/internal/intake"
	"mom-planner/internal/model"
	"mom-planner/internal/plan"
	"mom-planner/pkg/gemini"
	"mom-planner/pkg/llmprovider"
)

// GeneratePlan makes exactly one model call and returns only fully valid items.
func (uc *implUseCase) GeneratePlan(ctx context.Context, userInput, specifications string, tone model.Tone) ([]model.PlanItem, error) {
	if strings.TrimSpace(userInput) == "" {
		return nil, plan.ErrEmptyInput
	}
	if tone == "" {
		tone = model.ToneNeutral
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	temperature := uc.cfg.Temperature
	resp, err := uc.provider.GenerateContent(ctx, &llmprovider.Request{
		Prompt:           gemini.BuildPlanPrompt(userInput, specifications, string(tone)),
		Temperature:      &temperature,
		ResponseMIMEType: gemini.MIMETypeJSON,
		ResponseSchema:   gemini.PlanResponseSchema(),
	})
	if err != nil {
		if errors.Is(err, llmprovider.ErrProviderTimeout) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			uc.l.Warnf(ctx, "plan.usecase.GeneratePlan: %s timed out after %s", uc.provider.Name(), uc.cfg.Timeout)
			return nil, plan.NewGenerationError("request", errors.Join(plan.ErrGenerationTimeout, err))
		}
		uc.l.Errorf(ctx, "plan.usecase.GeneratePlan: provider %s: %v", uc.provider.Name(), err)
		return nil, plan.NewGenerationError("request", err)
	}

	items, err := uc.parsePlan(resp.Text())
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.GeneratePlan: invalid response: %v", err)
		return nil, err
	}

	uc.l.Infof(ctx, "plan.usecase.GeneratePlan: %d items from %s/%s", len(items), resp.ProviderName, resp.ModelName)
	return items, nil
}

// Generate runs a generation for a session. The previous plan is cleared up
// front and replaced only when this generation is still current on success.
func (uc *implUseCase) Generate(ctx context.Context, input plan.GenerateInput) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, input.SessionID)
	if err != nil {
		return plan.SessionOutput{}, err
	}

	tone, ok := model.ParseTone(input.Tone)
	if !ok {
		return uc.output(sess.View()), plan.ErrInvalidTone
	}

	if input.Input != nil {
		if _, err := sess.SetText(*input.Input); err != nil {
			return uc.output(sess.View()), err
		}
	}

	gen, genCtx, text, err := sess.Begin(context.WithoutCancel(ctx))
	if err != nil {
		if errors.Is(err, intake.ErrFormBusy) {
			uc.l.Infof(ctx, "plan.usecase.Generate: session %s busy, submission ignored", sess.ID)
		}
		return uc.output(sess.View()), err
	}

	// A client disconnect aborts the call like an explicit cancel.
	stop := context.AfterFunc(ctx, func() { sess.Cancel() })
	defer stop()

	items, genErr := uc.GeneratePlan(genCtx, text, input.Specifications, tone)
	if genErr != nil {
		view, current := sess.Fail(gen, plan.GenerationFailedMessage)
		if !current {
			return uc.output(view), plan.ErrGenerationCancelled
		}
		return uc.output(view), genErr
	}

	view, current := sess.Complete(gen, items)
	if !current {
		uc.l.Infof(ctx, "plan.usecase.Generate: dropping stale result for session %s", sess.ID)
		return uc.output(view), plan.ErrGenerationCancelled
	}
	return uc.output(view), nil
}

// CancelGeneration aborts the running generation of a session.
func (uc *implUseCase) CancelGeneration(ctx context.Context, id string) (plan.SessionOutput, error) {
	sess, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		return plan.SessionOutput{}, err
	}
	view, cancelled := sess.Cancel()
	if cancelled {
		uc.l.Infof(ctx, "plan.usecase.CancelGeneration: session %s", id)
	}
	return uc.output(view), nil
}
