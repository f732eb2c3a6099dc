package lead

import "time"

// DefaultFromEmail is the sender identity used when FROM_EMAIL is unset or empty.
const DefaultFromEmail = "Vibe Coding <noreply@yourdomain.com>"

// DefaultDispatchTimeout bounds a single provider call.
const DefaultDispatchTimeout = 10 * time.Second

// Config configures the capture endpoint.
type Config struct {
	FromEmail       string        `env:"FROM_EMAIL" envDefault:"Vibe Coding <noreply@yourdomain.com>"`
	DispatchTimeout time.Duration `env:"LEAD_DISPATCH_TIMEOUT" envDefault:"10s"`
}

// normalize fills zero values so a hand-built Config behaves like a loaded one.
func (c Config) normalize() Config {
	if c.FromEmail == "" {
		c.FromEmail = DefaultFromEmail
	}
	if c.DispatchTimeout <= 0 {
		c.DispatchTimeout = DefaultDispatchTimeout
	}
	return c
}
