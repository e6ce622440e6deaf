package email

import (
	"accountd/internal/core/domain/user"
	"context"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type SESSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender               string
	passwordResetBaseURL url.URL
}

func NewSESSender(awsConfig aws.Config, sender string, passwordResetBaseURL url.URL) *SESSender {
	return &SESSender{
		ses:                  ses.NewFromConfig(awsConfig),
		sender:               sender,
		passwordResetBaseURL: passwordResetBaseURL,
	}
}

func (s *SESSender) SendPasswordReset(ctx context.Context, u user.User, proof user.PasswordResetProof) error {
	link := passwordResetLink(s.passwordResetBaseURL, proof)
	body := passwordResetBody(u, link)

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(u.Email)},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(passwordResetSubject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	)
	return err
}
