// Package email implements the outbound notifier over SMTP.
package email

import (
	"context"
	stderrors "errors"
	"net/textproto"

	"gopkg.in/gomail.v2"

	"github.com/Destiny653/sayessport/internal/application/submission"
	"github.com/Destiny653/sayessport/internal/shared/config"
	"github.com/Destiny653/sayessport/internal/shared/errors"
	"github.com/Destiny653/sayessport/internal/shared/logger"
)

// SMTPNotifier delivers notifications through the configured SMTP transport.
// One best-effort attempt per submission; no retries, no queue.
type SMTPNotifier struct {
	cfg    config.EmailConfig
	logger logger.Interface
}

func NewSMTPNotifier(cfg config.EmailConfig, log logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		logger: log.Named("smtp"),
	}
}

// Send dispatches one notification. Credentials are checked here rather than
// at startup so a misconfigured deployment keeps serving pages and only the
// submission endpoints fail. The dial itself cannot be interrupted, so the
// context is only consulted before it starts.
func (s *SMTPNotifier) Send(ctx context.Context, n submission.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cfg.SMTPHost == "" || s.cfg.SMTPUser == "" || s.cfg.SMTPPassword == "" {
		return errors.NewConfigurationError("mail transport is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTPUser)
	m.SetHeader("To", s.recipient())
	m.SetHeader("Subject", n.Subject)
	if n.ReplyTo != "" {
		m.SetHeader("Reply-To", n.ReplyTo)
	}
	m.SetBody("text/plain", n.TextBody)
	if n.HTMLBody != "" {
		m.AddAlternative("text/html", n.HTMLBody)
	}

	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	dialer.SSL = s.cfg.SMTPPort == 465

	if err := dialer.DialAndSend(m); err != nil {
		var tpErr *textproto.Error
		if stderrors.As(err, &tpErr) && tpErr.Code >= 500 {
			return errors.NewDeliveryError("notification rejected by mail server", tpErr.Error())
		}
		return errors.NewDeliveryError("failed to send notification", err.Error())
	}

	s.logger.Debugw("notification delivered", "subject", n.Subject)
	return nil
}

// recipient is the override address when configured, otherwise the sender
// receives its own notifications.
func (s *SMTPNotifier) recipient() string {
	if s.cfg.Recipient != "" {
		return s.cfg.Recipient
	}
	return s.cfg.SMTPUser
}
