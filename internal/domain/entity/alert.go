package entity

import "encoding/json"

// AlertReport is the outcome of one evaluation.
type AlertReport struct {
	Reservations []Reservation `json:"reservations"`
	Thresholds   Thresholds    `json:"thresholds"`
	Subject      string        `json:"subject"`
	Message      string        `json:"message"`
	MessageID    string        `json:"message_id,omitempty"`
}

// AlertResult is returned to the invoker on success.
type AlertResult struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type alertBody struct {
	Count int `json:"count"`
}

// NewAlertResult builds the success result for count reservations.
func NewAlertResult(count int) AlertResult {
	body, _ := json.Marshal(alertBody{Count: count})
	return AlertResult{StatusCode: 200, Body: string(body)}
}
