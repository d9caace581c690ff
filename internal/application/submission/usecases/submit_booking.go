package usecases

import (
	"context"

	"github.com/Destiny653/sayessport/internal/application/submission"
	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/logger"
	"github.com/Destiny653/sayessport/internal/shared/validation"
)

type SubmitBookingUseCase struct {
	notifier submission.Notifier
	logger   logger.Interface
}

func NewSubmitBookingUseCase(notifier submission.Notifier, log logger.Interface) *SubmitBookingUseCase {
	return &SubmitBookingUseCase{
		notifier: notifier,
		logger:   log.Named("submit_booking"),
	}
}

type SubmitBookingResult struct {
	State       submission.State
	FieldErrors validation.FieldErrors
}

// Execute runs one booking request through the pipeline. The package id and
// title supplied by the hosting page travel with the submission and end up in
// the notification subject.
func (uc *SubmitBookingUseCase) Execute(ctx context.Context, form submission.BookingSubmission) (*SubmitBookingResult, error) {
	pipeline := submission.NewPipeline()
	if err := pipeline.Begin(); err != nil {
		return nil, errors.NewInternalError("submission pipeline unavailable", err.Error())
	}

	if fieldErrors := form.Validate(); !fieldErrors.IsEmpty() {
		pipeline.Invalid()
		uc.logger.Debugw("booking submission rejected", "field_errors", fieldErrors.String())
		return &SubmitBookingResult{State: pipeline.State(), FieldErrors: fieldErrors},
			errors.NewValidationError("Invalid form data")
	}

	pipeline.Submitting()

	if err := uc.notifier.Send(ctx, submission.BookingNotification(form)); err != nil {
		pipeline.Failed()
		uc.logger.Errorw("booking notification dispatch failed",
			"package_id", form.PackageID,
			"error", err)
		return &SubmitBookingResult{State: pipeline.State()}, err
	}

	pipeline.Submitted()
	uc.logger.Infow("booking submission delivered",
		"package_id", form.PackageID,
		"package_title", form.PackageTitle)
	return &SubmitBookingResult{State: pipeline.State()}, nil
}
