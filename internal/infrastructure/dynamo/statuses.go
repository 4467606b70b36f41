package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/email-otp-api/internal/domain"
)

// StatusRepo provides typed DynamoDB operations for the status-checks table.
type StatusRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewStatusRepo(client *dynamodb.Client, tableName string) *StatusRepo {
	return &StatusRepo{client: client, tableName: tableName}
}

func (r *StatusRepo) Put(ctx context.Context, s *domain.StatusCheck) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal status check: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *StatusRepo) Scan(ctx context.Context) ([]domain.StatusCheck, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var checks []domain.StatusCheck
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
