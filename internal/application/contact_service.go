package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/triptales/triptales-api/pkg/helpers"
	"github.com/triptales/triptales-api/pkg/mailer"
)

var (
	ErrContactFieldsRequired = errors.New("name, email, and message are required")
	ErrMailUnavailable       = errors.New("mail delivery is not configured")
)

// ContactService forwards visitor messages to the support inbox through the
// email queue; the worker does the actual Mailgun send.
type ContactService struct {
	Pub          *helpers.RabbitPublisher
	SupportEmail string
	Logger       *logrus.Logger
}

func NewContactService(pub *helpers.RabbitPublisher, supportEmail string, logger *logrus.Logger) *ContactService {
	return &ContactService{Pub: pub, SupportEmail: supportEmail, Logger: logger}
}

func (s *ContactService) Send(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return ErrContactFieldsRequired
	}
	if s.Pub == nil || s.SupportEmail == "" {
		return ErrMailUnavailable
	}

	job := mailer.EmailJob{
		To:       s.SupportEmail,
		Template: mailer.TemplateContactMessage,
		Data: map[string]any{
			"Name":    name,
			"Email":   email,
			"Message": message,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("contact message enqueue failed")
		}
		return err
	}
	return nil
}
