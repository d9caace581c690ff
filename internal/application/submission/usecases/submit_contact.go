package usecases

import (
	"context"

	"github.com/Destiny653/sayessport/internal/application/submission"
	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/logger"
	"github.com/Destiny653/sayessport/internal/shared/validation"
)

type SubmitContactUseCase struct {
	notifier submission.Notifier
	logger   logger.Interface
}

func NewSubmitContactUseCase(notifier submission.Notifier, log logger.Interface) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		notifier: notifier,
		logger:   log.Named("submit_contact"),
	}
}

type SubmitContactResult struct {
	State       submission.State
	FieldErrors validation.FieldErrors
}

// Execute runs one contact submission through the pipeline: validate, format
// as a notification, dispatch. An invalid form never reaches the notifier.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, form submission.ContactSubmission) (*SubmitContactResult, error) {
	pipeline := submission.NewPipeline()
	if err := pipeline.Begin(); err != nil {
		return nil, errors.NewInternalError("submission pipeline unavailable", err.Error())
	}

	if fieldErrors := form.Validate(); !fieldErrors.IsEmpty() {
		pipeline.Invalid()
		uc.logger.Debugw("contact submission rejected", "field_errors", fieldErrors.String())
		return &SubmitContactResult{State: pipeline.State(), FieldErrors: fieldErrors},
			errors.NewValidationError("Invalid form data")
	}

	pipeline.Submitting()

	if err := uc.notifier.Send(ctx, submission.ContactNotification(form)); err != nil {
		pipeline.Failed()
		uc.logger.Errorw("contact notification dispatch failed", "error", err)
		return &SubmitContactResult{State: pipeline.State()}, err
	}

	pipeline.Submitted()
	uc.logger.Infow("contact submission delivered", "reply_to", form.Email)
	return &SubmitContactResult{State: pipeline.State()}, nil
}
