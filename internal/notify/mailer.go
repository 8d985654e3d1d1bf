package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"jumatrek/pkg/logger"

	"github.com/google/uuid"
)

// Mailer delivers one HTML message. Send reports success and never returns
// an error: an unconfigured or failing transport yields false.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody, to string) bool
	Configured() bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

func (c SMTPConfig) complete() bool {
	return c.Host != "" && c.Port > 0 && c.User != "" && c.Password != "" && c.From != ""
}

// SMTPMailer speaks SMTP over implicit TLS (SMTPS).
type SMTPMailer struct {
	cfg  SMTPConfig
	log  *logger.Logger
	dial func(ctx context.Context, addr string) (net.Conn, error)
	now  func() time.Time
}

func NewSMTPMailer(cfg SMTPConfig, log *logger.Logger) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg, log: log, now: time.Now}
	m.dial = m.dialTLS
	return m
}

func (m *SMTPMailer) Configured() bool {
	return m.cfg.complete()
}

func (m *SMTPMailer) Send(ctx context.Context, subject, htmlBody, to string) bool {
	if !m.Configured() || to == "" {
		return false
	}

	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	if err := m.send(ctx, subject, htmlBody, to); err != nil {
		m.log.Warn("Failed to send email",
			"to", to,
			"subject", subject,
			"error", err,
		)
		return false
	}

	m.log.Info("Email sent", "to", to, "subject", subject)
	return true
}

func (m *SMTPMailer) send(ctx context.Context, subject, htmlBody, to string) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	conn, err := m.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err := client.Auth(smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(buildMessage(m.cfg.From, to, subject, htmlBody, m.now())); err != nil {
		w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp end of data: %w", err)
	}

	return client.Quit()
}

func (m *SMTPMailer) dialTLS(ctx context.Context, addr string) (net.Conn, error) {
	d := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: m.cfg.Timeout},
		Config:    &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12},
	}
	return d.DialContext(ctx, "tcp", addr)
}

func buildMessage(from, to, subject, htmlBody string, now time.Time) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@jumatrek>\r\n", uuid.NewString())
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.Bytes()
}
