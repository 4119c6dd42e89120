package mailingservices

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/techagentng/fundhub/config"
)

// Mailer sends transactional mail. Failures are the caller's to log; no
// request should ever fail because a mail did not go out.
type Mailer interface {
	SendWelcomeMessage(recipient, subject string) (string, error)
}

type Mailgun struct {
	Client *mailgun.MailgunImpl
	From   string
}

func (m *Mailgun) Init(conf *config.Config) {
	m.Client = mailgun.NewMailgun(conf.MgDomain, conf.MailgunApiKey)
	m.From = conf.MgEmailFrom
	if m.From == "" {
		m.From = fmt.Sprintf("FundHub <no-reply@%s>", conf.MgDomain)
	}
}

func (m *Mailgun) SendWelcomeMessage(recipient, subject string) (string, error) {
	body := "Welcome to FundHub! Share your referral link to start raising and climb the leaderboard."
	message := m.Client.NewMessage(m.From, subject, body, recipient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, id, err := m.Client.Send(ctx, message)
	if err != nil {
		return "", err
	}
	return id, nil
}
