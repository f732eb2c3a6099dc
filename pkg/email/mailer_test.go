package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vibe-landing/pkg/email"
)

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		From:     "Vibe Coding <noreply@example.com>",
		SendTo:   "user@example.com",
		Subject:  "Welcome",
		BodyHTML: "<p>Hi</p>",
		Tag:      "lead-welcome",
	}
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
		errMsg string
	}{
		{name: "valid params", mutate: func(*email.SendEmailParams) {}},
		{name: "valid without tag", mutate: func(p *email.SendEmailParams) { p.Tag = "" }},
		{name: "missing from", mutate: func(p *email.SendEmailParams) { p.From = " " }, errMsg: "From is required"},
		{name: "missing recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "" }, errMsg: "SendTo is required"},
		{name: "malformed recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "a@b" }, errMsg: "send_to"},
		{name: "missing subject", mutate: func(p *email.SendEmailParams) { p.Subject = "" }, errMsg: "Subject is required"},
		{name: "missing body", mutate: func(p *email.SendEmailParams) { p.BodyHTML = "\n" }, errMsg: "BodyHTML is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("postmark is the default provider", func(t *testing.T) {
		t.Parallel()
		sender, err := email.New(email.Config{PostmarkServerToken: "token"})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("dev provider", func(t *testing.T) {
		t.Parallel()
		sender, err := email.New(email.Config{Provider: email.ProviderDev, DevDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &email.DevSender{}, sender)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		sender, err := email.New(email.Config{Provider: "carrier-pigeon"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
		assert.Nil(t, sender)
	})

	t.Run("jetstream provider without settings", func(t *testing.T) {
		t.Parallel()
		sender, err := email.New(email.Config{Provider: email.ProviderJetStream})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
		assert.Nil(t, sender)
	})
}

func TestDevSender_RejectsInvalidParams(t *testing.T) {
	t.Parallel()
	sender := email.NewDevSender(t.TempDir())

	p := validParams()
	p.SendTo = "nope"
	assert.ErrorIs(t, sender.SendEmail(context.Background(), p), email.ErrInvalidParams)
}
