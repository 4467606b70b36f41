package domain

import "time"

// User is created on the first successful code redemption for an email.
// There is no separate registration path. Users are never mutated or deleted.
type User struct {
	UserID    string    `json:"id" dynamodbav:"user_id"`
	Email     string    `json:"email" dynamodbav:"email"` // stored lowercase, unique
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}
