package responses

type Server struct {
	Message string `json:"message"`
}

// Form is the reply to a form that failed validation. Errors maps a field
// name to the message shown next to it.
type Form struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
