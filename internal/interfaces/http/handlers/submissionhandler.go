package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Destiny653/sayessport/internal/application/submission"
	"github.com/Destiny653/sayessport/internal/application/submission/usecases"
	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/logger"
	"github.com/Destiny653/sayessport/internal/shared/utils"
	"github.com/Destiny653/sayessport/internal/shared/validation"
)

// SubmissionHandler exposes the two form endpoints. Response conventions:
// 200 {message}, 400 {error, details} with per-field messages, 500
// {error, details} for configuration or delivery failures.
type SubmissionHandler struct {
	contactUC *usecases.SubmitContactUseCase
	bookingUC *usecases.SubmitBookingUseCase
	logger    logger.Interface
}

func NewSubmissionHandler(contactUC *usecases.SubmitContactUseCase, bookingUC *usecases.SubmitBookingUseCase, log logger.Interface) *SubmissionHandler {
	return &SubmissionHandler{
		contactUC: contactUC,
		bookingUC: bookingUC,
		logger:    log.Named("submissions"),
	}
}

func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var form submission.ContactSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warnw("invalid request body for contact submission", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form data", err.Error())
		return
	}

	result, err := h.contactUC.Execute(c.Request.Context(), form)
	if err != nil {
		var fieldErrors validation.FieldErrors
		if result != nil {
			fieldErrors = result.FieldErrors
		}
		respondSubmissionError(c, err, fieldErrors)
		return
	}

	utils.MessageResponse(c, "Email sent successfully")
}

func (h *SubmissionHandler) SubmitBooking(c *gin.Context) {
	var form submission.BookingSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warnw("invalid request body for booking submission", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form data", err.Error())
		return
	}

	result, err := h.bookingUC.Execute(c.Request.Context(), form)
	if err != nil {
		var fieldErrors validation.FieldErrors
		if result != nil {
			fieldErrors = result.FieldErrors
		}
		respondSubmissionError(c, err, fieldErrors)
		return
	}

	utils.MessageResponse(c, "Booking request sent successfully")
}

// respondSubmissionError maps pipeline outcomes onto the wire: validation
// failures carry their field messages; configuration and delivery failures
// collapse to one generic 500 so transport internals stay out of responses.
func respondSubmissionError(c *gin.Context, err error, fieldErrors validation.FieldErrors) {
	if errors.IsValidationError(err) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid form data", fieldErrors)
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		utils.ErrorResponse(c, appErr.Code, "Failed to send email", string(appErr.Type))
		return
	}

	utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to send email", nil)
}
