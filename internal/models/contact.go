package models

import "time"

// ContactSubmission is a stored contact-form inquiry. Immutable once created.
type ContactSubmission struct {
	ID          int64     `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Service     string    `bson:"service,omitempty" json:"service,omitempty"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}

// ContactSubmissionInput is the payload accepted from the contact form.
// SubmittedAt is always set server-side, never taken from the client.
type ContactSubmissionInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// ContactSubmissionResponse is returned to the frontend after a submission
type ContactSubmissionResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
