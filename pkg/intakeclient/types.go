package intakeclient

// Lead is a lead-capture submission.
type Lead struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Company      *string `json:"company,omitempty"`
	CurrentTools *string `json:"current_tools,omitempty"`
	Message      *string `json:"message,omitempty"`
}

// Subscriber is a newsletter subscription.
type Subscriber struct {
	Email     string   `json:"email"`
	Interests []string `json:"interests,omitempty"`
}

type LeadReceipt struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
}

type SubscriberReceipt struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}

// Status mirrors the /test diagnostics report.
type Status struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Placeholder reports whether the receipt id is the fallback marker, meaning
// the server accepted the submission without persisting it.
func Placeholder(id string) bool {
	return id == "mock-id"
}
