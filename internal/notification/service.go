// internal/notification/service.go

package notification

import (
	"context"
	"fmt"
	"log"
)

// Service sends fire-and-forget notifications. Failures are logged, never
// propagated - a lost support ticket email should not fail the request
// that raised it.
type Service interface {
	SendSupportTicket(ctx context.Context, ticket *SupportTicket)
	SendMatchAlert(ctx context.Context, alert *MatchAlert)
}

// SupportTicket is a user-raised issue forwarded to the support inbox.
type SupportTicket struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// MatchAlert tells a user a strong match appeared.
type MatchAlert struct {
	Email     string
	Phone     string
	MatchName string
	Score     int
	AlertsOn  bool
}

type service struct {
	email        EmailProvider
	sms          SMSProvider
	supportInbox string
}

func NewService(email EmailProvider, sms SMSProvider, supportInbox string) Service {
	return &service{
		email:        email,
		sms:          sms,
		supportInbox: supportInbox,
	}
}

func (s *service) SendSupportTicket(ctx context.Context, ticket *SupportTicket) {
	go func() {
		msg := &EmailMessage{
			To:      s.supportInbox,
			Subject: fmt.Sprintf("[Support] %s", ticket.Subject),
			Body: fmt.Sprintf("From: %s (%s)\n\n%s",
				ticket.Email, ticket.UserID, ticket.Message),
		}
		if err := s.email.SendEmail(context.Background(), msg); err != nil {
			log.Printf("Failed to send support ticket email: %v", err)
		}
	}()
}

func (s *service) SendMatchAlert(ctx context.Context, alert *MatchAlert) {
	if !alert.AlertsOn {
		return
	}
	go func() {
		if alert.Email != "" {
			msg := &EmailMessage{
				To:      alert.Email,
				Subject: "You have a new flatmate match!",
				Body:    fmt.Sprintf("%s looks like a %d%% match. Log in to check them out.", alert.MatchName, alert.Score),
			}
			if err := s.email.SendEmail(context.Background(), msg); err != nil {
				log.Printf("Failed to send match alert email: %v", err)
			}
		}
		if alert.Phone != "" {
			sms := &SMSMessage{
				To:   alert.Phone,
				Body: fmt.Sprintf("FlatMatch: %s is a %d%% match for you!", alert.MatchName, alert.Score),
			}
			if err := s.sms.SendSMS(context.Background(), sms); err != nil {
				log.Printf("Failed to send match alert SMS: %v", err)
			}
		}
	}()
}
