package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/pedrofh/portfolio/internal/i18n"
)

// contact handles the contact form POST and responds with a small HTML
// fragment so the form can swap it in place. Mail failures stay internal;
// the visitor only sees the localized error message.
func (s *Server) contact(c *gin.Context) {
	lang := i18n.DefaultLanguage
	if l := c.PostForm("lang"); i18n.Supported(l) {
		lang = i18n.Language(l)
	}

	name := c.PostForm("fullName")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if err := sendContactEmail(name, email, message); err != nil {
		slog.Error("sending contact email", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", s.page(lang, nil))
		return
	}

	slog.Info("contact email sent", "name", name)
	c.HTML(http.StatusOK, "contact-success.html", s.page(lang, nil))
}

func sendContactEmail(name, email, message string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	toEmail := os.Getenv("TO_EMAIL")

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if toEmail == "" {
		toEmail = smtpUser
	}

	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n", name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg)
}
