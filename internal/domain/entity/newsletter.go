package entity

import "time"

// NewsletterSignup is one email subscription request, either stored remotely or queued locally.
type NewsletterSignup struct {
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}
