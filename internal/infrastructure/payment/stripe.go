package payment

import (
	"github.com/stripe/stripe-go/v81/client"
	"go.uber.org/zap"
)

// StripeProvider wraps the Stripe API client. The provider is
// constructed whether or not a secret is configured; when the secret
// is empty the client stays nil and Enabled reports false. Card
// orders are accepted either way and settle out of band.
type StripeProvider struct {
	api    *client.API
	logger *zap.Logger
}

// NewStripeProvider creates a StripeProvider from the optional secret
func NewStripeProvider(secret string, logger *zap.Logger) *StripeProvider {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &StripeProvider{logger: logger}
	if secret == "" {
		logger.Info("stripe secret not configured, card payments settle out of band")
		return p
	}

	p.api = &client.API{}
	p.api.Init(secret, nil)
	logger.Info("stripe client configured")
	return p
}

// Enabled reports whether a Stripe client is configured
func (p *StripeProvider) Enabled() bool {
	return p.api != nil
}

// Client returns the underlying Stripe API client, or nil when
// no secret is configured
func (p *StripeProvider) Client() *client.API {
	return p.api
}
