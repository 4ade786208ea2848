package services

import (
	"fmt"
	"sync"
	"talktag_server/structs"
	"talktag_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService sends transactional mail through Resend. Without an API key
// (local development, tests) every send is a logged no-op.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	var c *resend.Client
	if cfg.Email.ApiKey != "" {
		c = getEmailClient(cfg.Email.ApiKey)
	}
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: c,
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.client == nil {
		es.logger.Debug("Email sending disabled, skipping",
			gecho.Field("to", to),
			gecho.Field("subject", subject),
		)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendWelcomeEmail greets a freshly registered account and points it at the
// dashboard.
func (es *EmailService) SendWelcomeEmail(user *tables.User) error {
	dashboardURL := fmt.Sprintf("https://%s/", es.cfg.Site.Domain)

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #2B6CB0; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.button { display: inline-block; padding: 15px 30px; background-color: #2B6CB0; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Welcome, %s!</h1>
				</div>
				<div class="content">
					<p>Your account is ready. Create your first product, print its QR code and anyone who scans it will hear your description read aloud.</p>
					<p style="text-align: center;">
						<a href="%s" class="button">Open your dashboard</a>
					</p>
				</div>
				<div class="footer">
					<p>Talktag | Give your products a voice</p>
				</div>
			</div>
		</body>
		</html>
	`, user.Username, dashboardURL)

	return es.SendEmail([]string{user.Email}, "Welcome to Talktag", emailBody)
}
