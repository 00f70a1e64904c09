package models

// ContactCollection is the store collection holding contact submissions.
const ContactCollection = "contactmessage"

// Contact entry statuses
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusArchived = "archived"
)

// ContactEntry represents a contact form submission. Entries are written
// once and never read back by this service.
type ContactEntry struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company,omitempty"`
	Message string  `json:"message"`
	Status  string  `json:"status"`
}

// NewContactEntry builds a contact entry with the status defaulted to new.
func NewContactEntry(name, email string, company *string, message string) ContactEntry {
	return ContactEntry{
		Name:    name,
		Email:   email,
		Company: company,
		Message: message,
		Status:  ContactStatusNew,
	}
}
