package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"hackfinder/internal/domain"
)

// SESConfig carries the AWS SES credentials and region.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig selects and configures the outbound mail provider.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer builds the configured mail provider. "ses" sends through AWS SES;
// "noop" and unknown providers log instead of sending, which keeps local
// development working without AWS credentials.
func NewMailer(cfg MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch cfg.Provider {
	case "ses":
		return newSESMailer(cfg, logger), nil
	case "noop", "":
		return &logMailer{logger: logger}, nil
	default:
		logger.Warn("unknown mail provider, falling back to noop", "provider", cfg.Provider)
		return &logMailer{logger: logger}, nil
	}
}

type sesMailer struct {
	client *ses.Client
	from   string
	logger *slog.Logger
}

func newSESMailer(cfg MailerConfig, logger *slog.Logger) *sesMailer {
	awsCfg := aws.Config{
		Region: cfg.SES.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, ""),
		),
	}
	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return &sesMailer{client: ses.NewFromConfig(awsCfg), from: from, logger: logger}
}

func (m *sesMailer) Send(to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")}
	}
	if text != "" {
		body.Text = &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")}
	}
	out, err := m.client.SendEmail(context.Background(), &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	m.logger.Info("email sent", "provider", "ses", "message_id", aws.ToString(out.MessageId))
	return nil
}

// logMailer records what would have been sent without sending anything.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(to, subject, html, text string) error {
	m.logger.Info("email suppressed", "provider", "noop", "to", to, "subject", subject)
	return nil
}
