package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Subject/Text are set directly, or Template+Data select one of the
// builders in templates.go.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "contact_message" or "promotion_status"
	Data     map[string]any `json:"data,omitempty"`
}
