package http

// CreateIntentRequest is the payload for POST /create-payment-intent.
// Price is in major currency units; nil means it was not sent.
type CreateIntentRequest struct {
	Price *float64 `json:"price"`
}

// CreateIntentResponse carries the secret the client confirms the payment with.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
