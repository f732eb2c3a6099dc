package email

// Provider names accepted by Config.Provider.
const (
	ProviderPostmark  = "postmark"
	ProviderJetStream = "nats"
	ProviderDev       = "dev"
)

// Config holds email service configuration.
// Only the settings of the selected provider are validated.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"postmark"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	ReplyTo              string `env:"EMAIL_REPLY_TO"`
	NATSURL              string `env:"NATS_URL" envDefault:"nats://127.0.0.1:4222"`
	NATSStream           string `env:"NATS_EMAIL_STREAM" envDefault:"EMAILS"`
	NATSSubject          string `env:"NATS_EMAIL_SUBJECT" envDefault:"EMAILS.send"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./.emails"`
}
