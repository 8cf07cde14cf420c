package mail

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Sender delivers transactional mail over SMTP.
type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.FromName == "" {
		cfg.FromName = "MyContact"
	}
	return &Sender{cfg: cfg}
}

func (s *Sender) SendPasswordReset(ctx context.Context, toEmail, userName, resetLink string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("Password reset - MyContact")
	msg.SetImportance(gomail.ImportanceHigh)

	body, err := resetBody(userName, resetLink)
	if err != nil {
		return fmt.Errorf("render mail body: %w", err)
	}
	msg.SetBodyString(gomail.TypeTextHTML, body)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", toEmail, err)
	}
	return nil
}

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto;">
    <h1>Password reset</h1>
    <p>Hello <strong>{{.UserName}}</strong>,</p>
    <p>We received a request to reset the password for your MyContact account.</p>
    <p><a href="{{.ResetLink}}" style="display: inline-block; padding: 12px 30px; background: #667eea; color: #fff; text-decoration: none; border-radius: 8px;">Reset password</a></p>
    <p>The link expires in 30 minutes and can be used once.</p>
    <p>If you did not request a reset, ignore this mail. Your account is safe.</p>
    <p style="color: #999; font-size: 12px;">If the button does not work, copy this link: {{.ResetLink}}</p>
  </div>
</body>
</html>`))

func resetBody(userName, resetLink string) (string, error) {
	var out strings.Builder
	err := resetTemplate.Execute(&out, struct {
		UserName  string
		ResetLink string
	}{UserName: userName, ResetLink: resetLink})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
