package stripe

import (
	"context"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

var _ usecase.SubscriptionProvider = (*BillingClient)(nil)

// BillingClient adaptador Stripe para el puerto de suscripciones.
// Solo lee y cancela: el alta de suscripciones ocurre fuera de esta API
// (checkout alojado por Stripe).
type BillingClient struct {
	api *client.API
}

// NewBillingClient crea el cliente con la secret key de la cuenta.
func NewBillingClient(secretKey string) *BillingClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &BillingClient{api: api}
}

// GetSubscription consulta el estado actual de la suscripción en Stripe.
func (c *BillingClient) GetSubscription(ctx context.Context, subscriptionID string) (*usecase.SubscriptionSnapshot, error) {
	params := &stripeapi.SubscriptionParams{
		Params: stripeapi.Params{Context: ctx},
	}
	sub, err := c.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("consultar suscripción en Stripe: %w", err)
	}
	return toSnapshot(sub), nil
}

// CancelSubscription cancela la suscripción de inmediato.
func (c *BillingClient) CancelSubscription(ctx context.Context, subscriptionID string) (*usecase.SubscriptionSnapshot, error) {
	params := &stripeapi.SubscriptionCancelParams{
		Params: stripeapi.Params{Context: ctx},
	}
	sub, err := c.api.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("cancelar suscripción en Stripe: %w", err)
	}
	return toSnapshot(sub), nil
}

func toSnapshot(sub *stripeapi.Subscription) *usecase.SubscriptionSnapshot {
	snap := &usecase.SubscriptionSnapshot{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
	}
	if sub.Customer != nil {
		snap.CustomerID = sub.Customer.ID
	}
	return snap
}
