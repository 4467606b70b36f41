package domain

import "time"

type StatusCheck struct {
	StatusID   string    `json:"id" dynamodbav:"status_id"`
	ClientName string    `json:"client_name" dynamodbav:"client_name"`
	Timestamp  time.Time `json:"timestamp" dynamodbav:"timestamp"`
}

type StatusCheckInput struct {
	ClientName string `json:"client_name" validate:"required"`
}
