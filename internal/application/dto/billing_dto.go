package dto

// SubscriptionResponse snapshot de suscripción persistido en el equipo.
type SubscriptionResponse struct {
	TeamID         string `json:"teamId"`
	CustomerID     string `json:"customerId,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	Status         string `json:"status"`
}
