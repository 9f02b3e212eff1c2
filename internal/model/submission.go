package model

// Submission represents a contact form submission as received from the
// website. Nothing is persisted; a Submission lives for one request only.
type Submission struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// Receipt is returned to the visitor after a successful auto-reply.
// The reference number is display-only: it is not stored anywhere and
// cannot be looked up later.
type Receipt struct {
	ReferenceNumber string `json:"referenceNumber"`
}
