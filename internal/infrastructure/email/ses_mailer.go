package email

import (
	"context"
	"fmt"
	"strings"

	"quotesmith/internal/domain/entities"
	"quotesmith/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// SESMailer delivers quotes to customers as plain-text email via AWS SES.
type SESMailer struct {
	client *ses.Client
	from   string
	log    *zap.Logger
}

var _ interfaces.IQuoteMailer = (*SESMailer)(nil)

func NewSESMailer(ctx context.Context, region, fromEmail string, log *zap.Logger) (*SESMailer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: fromEmail, log: log}, nil
}

func (m *SESMailer) SendQuote(ctx context.Context, q entities.Quote, recipient string) error {
	subject, body := renderQuoteEmail(q)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return err
	}

	m.log.Info("quote email sent",
		zap.String("quote_id", q.ID),
		zap.String("recipient", recipient))
	return nil
}

func renderQuoteEmail(q entities.Quote) (subject, body string) {
	subject = fmt.Sprintf("Your quote for %s", q.JobType)

	var b strings.Builder
	if q.CustomerName != "" {
		fmt.Fprintf(&b, "Hi %s,\n\n", q.CustomerName)
	}
	fmt.Fprintf(&b, "Here is your quote for %s.\n\n", q.JobType)
	fmt.Fprintf(&b, "Quote ID: %s\n", q.ID)
	fmt.Fprintf(&b, "Total: $%.2f\n\n", q.Total)

	if len(q.Tiers) > 0 {
		b.WriteString("Options:\n")
		for _, tier := range q.Tiers {
			marker := " "
			if tier.Recommended {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s %s: $%.2f\n", marker, tier.Name, tier.Price)
			for _, f := range tier.Features {
				fmt.Fprintf(&b, "    - %s\n", f)
			}
		}
		b.WriteString("\n")
	}

	if q.Deposit.Required {
		fmt.Fprintf(&b, "A deposit of $%.2f (%.0f%%) is due to get started; the remaining $%.2f is due on completion.\n\n",
			q.Deposit.Amount, q.Deposit.Percent, q.Deposit.BalanceDue)
	}

	b.WriteString("Reply to this email with any questions.\n")
	return subject, b.String()
}
