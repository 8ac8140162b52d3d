package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"domainsmarket/internal/config"
)

// Mailer sends the transactional emails the platform needs: a welcome mail
// on registration and a password reset code.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.EmailConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) SendWelcome(to string) error {
	html := `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px; border-radius: 8px;">
		<h2 style="color: #333;">Hello!</h2>
		<p>You registered on domains.ge successfully!</p>
		<p style="margin-top: 30px; font-size: 14px; color: #777;">Thanks, <br />The Domains.ge Team</p>
	</div>`
	return m.send(to, "Welcome to Domains.ge!",
		fmt.Sprintf("Hello %s, welcome to our platform!", to), html)
}

func (m *Mailer) SendPasswordReset(to, code string) error {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px; border-radius: 8px;">
		<h2 style="color: #333;">Hello!</h2>
		<p>You requested a password reset. Use the code below to reset your password:</p>
		<div style="font-size: 24px; font-weight: bold; color: #2E86C1; margin: 20px 0;">%s</div>
		<p><strong>This code is valid for 15 minutes.</strong></p>
		<p>If you did not request this, you can ignore this email.</p>
		<p style="margin-top: 30px; font-size: 14px; color: #777;">Thanks,<br />The Domains.ge Team</p>
	</div>`, code)
	return m.send(to, "Reset Your Password", "Use this code: "+code, html)
}

func (m *Mailer) send(to, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
