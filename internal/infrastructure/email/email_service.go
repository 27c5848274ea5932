package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/booking"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	CompanyName    string
	BaseURL        string
}

// EmailService implements the EmailService interface
type EmailService struct {
	config    *EmailConfig
	logger    *logrus.Logger
	client    *sendgrid.Client
	templates map[string]*template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(config *EmailConfig, logger *logrus.Logger) (ports.EmailService, error) {
	client := sendgrid.NewSendClient(config.SendGridAPIKey)

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return &EmailService{
		config:    config,
		logger:    logger,
		client:    client,
		templates: templates,
	}, nil
}

// loadTemplates loads all email templates from disk
func loadTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)

	templateDir := "templates/email"

	templateFiles := []string{
		"booking_confirmation.html",
	}

	for _, file := range templateFiles {
		name := filepath.Base(file)
		name = name[:len(name)-len(filepath.Ext(name))] // Remove .html extension

		tmpl, err := template.ParseFiles(filepath.Join(templateDir, file))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
		}

		templates[name] = tmpl
	}

	return templates, nil
}

// sendEmail sends an email using SendGrid
func (e *EmailService) sendEmail(to, subject, htmlContent string) error {
	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, "", htmlContent)

	response, err := e.client.Send(message)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
			"error":   err,
		}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"to":          to,
		"subject":     subject,
		"status_code": response.StatusCode,
	}).Info("Email sent successfully")

	return nil
}

// renderTemplate renders an email template with the provided data
func (e *EmailService) renderTemplate(templateName string, data interface{}) (string, error) {
	tmpl, exists := e.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

// BookingConfirmationData holds data for the booking confirmation template
type BookingConfirmationData struct {
	CompanyName  string
	GuestName    string
	PropertyName string
	CheckIn      string
	CheckOut     string
	Guests       int
	TotalPrice   string
	BookingURL   string
}

// SendBookingConfirmation sends a reservation confirmation to the guest
func (e *EmailService) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	data := BookingConfirmationData{
		CompanyName:  e.config.CompanyName,
		GuestName:    b.GuestName,
		PropertyName: b.PropertyName,
		CheckIn:      b.CheckIn.Format("Monday, 2 January 2006"),
		CheckOut:     b.CheckOut.Format("Monday, 2 January 2006"),
		Guests:       b.Guests,
		TotalPrice:   fmt.Sprintf("%.2f %s", b.TotalPrice, b.Currency),
		BookingURL:   fmt.Sprintf("%s/bookings/%s", e.config.BaseURL, b.ID),
	}

	htmlContent, err := e.renderTemplate("booking_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render booking confirmation template: %w", err)
	}

	subject := fmt.Sprintf("Your Booking Is Confirmed - %s", e.config.CompanyName)

	return e.sendEmail(b.GuestEmail, subject, htmlContent)
}
