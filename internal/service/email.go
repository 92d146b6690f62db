package service

import (
	"context"
	"fmt"
	"strings"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	resetURL  string
}

// NewEmailService creates a SendGrid-backed email service. resetURL is the
// base URL the password reset token is appended to.
func NewEmailService(apiKey, fromEmail, fromName, resetURL string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		resetURL:  resetURL,
	}
}

func (s *sendgridEmailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendPasswordReset(ctx context.Context, email, name, token string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nA password reset was requested for your account.\n\nReset your password here:\n\n%s?token=%s\n\nIf you did not request this, you can ignore this email.",
		name, s.resetURL, token)
	return s.send(email, "Password Reset", body)
}

func (s *sendgridEmailService) SendDueRentalsDigest(ctx context.Context, email string, rentals []domain.Rental) error {
	if len(rentals) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The following %d rental(s) are due for return:\n\n", len(rentals))
	for _, rt := range rentals {
		customer := "unknown customer"
		if rt.Customer != nil {
			customer = rt.Customer.Name
		}
		item := "unknown item"
		if rt.ClothingItem != nil && rt.ClothingItem.Name != "" {
			item = rt.ClothingItem.Name
		}
		fmt.Fprintf(&b, "- %s: %s (due %s, status %s)\n", customer, item, utils.FormatDate(rt.EndDate), rt.Status)
	}
	return s.send(email, "Rentals due for return", b.String())
}
