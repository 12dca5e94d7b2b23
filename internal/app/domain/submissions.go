package domain

// Lead is a prospective-customer contact submitted through the lead form.
// Optional fields stay nil when absent and are stored as null.
type Lead struct {
	Name         string  `json:"name" validate:"required,min=2,max=120"`
	Email        string  `json:"email" validate:"required,email"`
	Company      *string `json:"company"`
	CurrentTools *string `json:"current_tools"`
	Message      *string `json:"message"`
}

// Subscriber is an email address opted into the mailing list.
type Subscriber struct {
	Email     string   `json:"email" validate:"required,email"`
	Interests []string `json:"interests"`
}

// LeadReceipt is returned after a lead is stored.
type LeadReceipt struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
}

// SubscriberReceipt is returned after a subscription is stored.
// Interests is never nil.
type SubscriberReceipt struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}
