package domain

// EmailRequest is the payload posted to the notification service when an
// account is created.
type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
