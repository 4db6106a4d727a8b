package service

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"limpia/internal/dates"
	"limpia/internal/db"
	"limpia/internal/entities"
)

// NotifyConfig carries the provider credentials; empty values disable the
// corresponding channel.
type NotifyConfig struct {
	SendGridAPIKey   string
	SendGridFrom     string
	SendGridFromName string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

type NotifyService struct {
	cfg    NotifyConfig
	logger *zap.Logger
}

func NewNotifyService(cfg NotifyConfig, logger *zap.Logger) *NotifyService {
	if cfg.SendGridFromName == "" {
		cfg.SendGridFromName = "FreshNest Cleaning"
	}
	return &NotifyService{cfg: cfg, logger: logger}
}

// BookingEmailAsync sends the booking status email without blocking the
// request; failures are logged, never surfaced to the caller.
func (n *NotifyService) BookingEmailAsync(b *db.Booking, status string) {
	if b.ClientEmail == "" {
		return
	}
	data := emailData(b, status)
	go func() {
		if err := n.sendEmail(b.ClientEmail, data); err != nil {
			n.logger.Warn("booking email failed",
				zap.String("code", b.Code), zap.Error(err))
		}
	}()
}

// BookingSMSAsync sends the booking status SMS in the background.
func (n *NotifyService) BookingSMSAsync(b *db.Booking, status string) {
	if b.ClientPhone == "" {
		return
	}
	msg := fmt.Sprintf("FreshNest Cleaning: booking %s is %s.\n%s at %s.\nDetails in your email.",
		b.Code, status, dates.FromTime(b.BookingDate), dates.FormatClock(b.StartMinute))
	go func() {
		if err := n.SendSMS(b.ClientPhone, msg); err != nil {
			n.logger.Warn("booking SMS failed",
				zap.String("code", b.Code), zap.Error(err))
		}
	}()
}

func emailData(b *db.Booking, status string) entities.BookingEmailData {
	return entities.BookingEmailData{
		ClientName:    b.ClientName,
		BookingCode:   b.Code,
		ServiceType:   b.ServiceType,
		Address:       b.Address,
		DateFormatted: b.BookingDate.Format("02 Jan 2006"),
		TimeFormatted: dates.FormatClock(b.StartMinute) + "–" + dates.FormatClock(b.EndMinute),
		Status:        status,
		CurrentYear:   time.Now().Year(),
	}
}

func (n *NotifyService) sendEmail(to string, data entities.BookingEmailData) error {
	if n.cfg.SendGridAPIKey == "" || n.cfg.SendGridFrom == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	subject := fmt.Sprintf("Your FreshNest cleaning is %s — booking %s", data.Status, data.BookingCode)
	plain := fmt.Sprintf(
		"Hello %s,\n\nYour cleaning booking is %s.\n\n"+
			"Booking code: %s\n"+
			"Service: %s\n"+
			"Address: %s\n"+
			"When: %s, %s\n\n"+
			"Thank you for choosing FreshNest Cleaning.",
		data.ClientName, data.Status, data.BookingCode, data.ServiceType,
		data.Address, data.DateFormatted, data.TimeFormatted,
	)

	from := mail.NewEmail(n.cfg.SendGridFromName, n.cfg.SendGridFrom)
	toAddr := mail.NewEmail(data.ClientName, to)
	message := mail.NewSingleEmail(from, subject, toAddr, plain, "")

	client := sendgrid.NewSendClient(n.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SendSMS delivers a single text message through Twilio.
func (n *NotifyService) SendSMS(toNumber, body string) error {
	if n.cfg.TwilioAccountSID == "" || n.cfg.TwilioAuthToken == "" || n.cfg.TwilioFromNumber == "" {
		return fmt.Errorf("twilio is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: n.cfg.TwilioAccountSID,
		Password: n.cfg.TwilioAuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(n.cfg.TwilioFromNumber)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending SMS: %w", err)
	}
	return nil
}
