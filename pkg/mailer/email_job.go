package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects a named template rendered by the worker with Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Template string         `json:"template"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}
