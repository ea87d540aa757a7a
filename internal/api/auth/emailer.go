package auth

import (
	"fmt"
	"net/smtp"

	"product-studio/config"
	"product-studio/pkg/logger"
)

func SendVerificationEmail(to string, token string) error {
	auth := smtp.PlainAuth("", config.SMTP_FROM, config.SMTP_PASSWORD, config.SMTP_HOST)

	link := fmt.Sprintf("%s/verify?token=%s", config.APP_BASE_URL, token)
	subject := "Verify Your Account"
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + config.SMTP_FROM + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, config.SMTP_FROM, []string{to}, message)
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Str("to", to).Msg("smtp send failed")
	}
	return err
}
