package domain

// VerificationCode is the ephemeral record behind a pending login attempt.
// PK: email (lowercase) — at most one live record per email; a new request
// overwrites the code and expiry in place. ExpiresAt is a Unix timestamp used
// as the DynamoDB TTL attribute.
//
// Code is a string to preserve leading zeros; comparison is exact string match.
type VerificationCode struct {
	ID        string `json:"id" dynamodbav:"id"`
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}

// SendCodeRequest is the body of POST /send-verification-code.
type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeRequest is the body of POST /verify-code.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}
