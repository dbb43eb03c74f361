package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

type SMTPOptions struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPNotifier sends HTML mail. A fresh client is dialled per message so
// concurrent sends never share a connection.
type SMTPNotifier struct {
	host    string
	from    string
	timeout time.Duration
	opts    []mail.Option
}

func NewSMTPNotifier(o SMTPOptions) (*SMTPNotifier, error) {
	if o.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	opts := []mail.Option{
		mail.WithPort(o.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if o.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(o.Timeout))
	}
	if o.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(o.User),
			mail.WithPassword(o.Password),
		)
	}

	// Fail fast on bad options instead of on the first registration.
	if _, err := mail.NewClient(o.Host, opts...); err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPNotifier{host: o.Host, from: o.From, timeout: o.Timeout, opts: opts}, nil
}

func (n *SMTPNotifier) Send(ctx context.Context, m Message) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTML)

	client, err := mail.NewClient(n.host, n.opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
