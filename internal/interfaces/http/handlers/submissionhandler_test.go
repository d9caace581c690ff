package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Destiny653/sayessport/internal/application/submission"
	"github.com/Destiny653/sayessport/internal/application/submission/usecases"
	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/logger"
)

type stubNotifier struct {
	sendFunc func(n submission.Notification) error
	sent     []submission.Notification
}

func (s *stubNotifier) Send(_ context.Context, n submission.Notification) error {
	s.sent = append(s.sent, n)
	if s.sendFunc != nil {
		return s.sendFunc(n)
	}
	return nil
}

func newSubmissionRouter(notifier submission.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	handler := NewSubmissionHandler(
		usecases.NewSubmitContactUseCase(notifier, log),
		usecases.NewSubmitBookingUseCase(notifier, log),
		log,
	)

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/contact", handler.SubmitContact)
	api.POST("/submit-booking", handler.SubmitBooking)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func validContactPayload() map[string]string {
	return map[string]string{
		"name":    "Alex Lindqvist",
		"phone":   "+46701234567",
		"email":   "alex@example.com",
		"message": "I would like to book a trial session.",
	}
}

func validBookingPayload() map[string]string {
	return map[string]string{
		"fullName":              "Alex Lindqvist",
		"dateOfBirth":           "2008-04-12",
		"email":                 "alex@example.com",
		"phoneNumber":           "+46701234567",
		"sports":                "football",
		"trainingGoals":         "Improve sprint speed",
		"preferredTrainingDays": "monday",
		"packageId":             "2",
		"packageTitle":          "Performance Block",
	}
}

func TestSubmitContact_Success(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newSubmissionRouter(notifier)

	rec := postJSON(t, engine, "/api/contact", validContactPayload())

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email sent successfully", body["message"])
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "alex@example.com", notifier.sent[0].ReplyTo)
}

func TestSubmitContact_ValidationFailure(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newSubmissionRouter(notifier)

	payload := validContactPayload()
	payload["name"] = "A"
	payload["email"] = "not-an-email"
	delete(payload, "message")

	rec := postJSON(t, engine, "/api/contact", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid form data", body.Error)
	assert.Contains(t, body.Details, "name")
	assert.Contains(t, body.Details, "email")
	assert.Contains(t, body.Details, "message")
	assert.Empty(t, notifier.sent, "invalid form must not reach the notifier")
}

func TestSubmitContact_MalformedJSON(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newSubmissionRouter(notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid form data", body["error"])
	assert.Empty(t, notifier.sent)
}

func TestSubmitContact_ConfigurationError(t *testing.T) {
	notifier := &stubNotifier{sendFunc: func(submission.Notification) error {
		return errors.NewConfigurationError("mail transport is not configured")
	}}
	engine := newSubmissionRouter(notifier)

	rec := postJSON(t, engine, "/api/contact", validContactPayload())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to send email", body.Error)
	assert.Equal(t, "configuration_error", body.Details)
}

func TestSubmitContact_DeliveryError(t *testing.T) {
	notifier := &stubNotifier{sendFunc: func(submission.Notification) error {
		return errors.NewDeliveryError("notification rejected by mail server")
	}}
	engine := newSubmissionRouter(notifier)

	rec := postJSON(t, engine, "/api/contact", validContactPayload())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to send email", body.Error)
}

func TestSubmitBooking_Success(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newSubmissionRouter(notifier)

	rec := postJSON(t, engine, "/api/submit-booking", validBookingPayload())

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Booking request sent successfully", body["message"])
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Subject, "Performance Block")
}

func TestSubmitBooking_ValidationFailure(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newSubmissionRouter(notifier)

	payload := validBookingPayload()
	payload["dateOfBirth"] = "12/04/2008"
	delete(payload, "sports")

	rec := postJSON(t, engine, "/api/submit-booking", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid form data", body.Error)
	assert.Contains(t, body.Details, "dateOfBirth")
	assert.Contains(t, body.Details, "sports")
	assert.Empty(t, notifier.sent)
}

func TestSubmitBooking_OptionalFieldsOmitted(t *testing.T) {
	notifier := &stubNotifier{}
	engine := newSubmissionRouter(notifier)

	rec := postJSON(t, engine, "/api/submit-booking", validBookingPayload())

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].TextBody, "Not provided")
}
