package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/email-otp-api/internal/domain"
)

// CodeRepo manages verification-code records. The table is keyed by email so
// DynamoDB itself serializes concurrent writes per address: Upsert and
// DeleteMatching are single conditional operations, never read-then-write.
type CodeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCodeRepo(client *dynamodb.Client, tableName string) *CodeRepo {
	return &CodeRepo{client: client, tableName: tableName}
}

// Upsert stores a fresh code and expiry for the email. An existing record
// keeps its id; a new record gets newID. Both cases are one atomic UpdateItem.
func (r *CodeRepo) Upsert(ctx context.Context, email, code string, expiresAt int64, newID string) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              strKey("email", email),
		UpdateExpression: aws.String("SET #c = :c, #e = :e, #id = if_not_exists(#id, :id)"),
		ExpressionAttributeNames: map[string]string{
			"#c": "code", "#e": "expires_at", "#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c":  &types.AttributeValueMemberS{Value: code},
			":e":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expiresAt)},
			":id": &types.AttributeValueMemberS{Value: newID},
		},
	})
	if err != nil {
		return fmt.Errorf("upsert verification code: %w", err)
	}
	return nil
}

// GetByEmailAndCode returns the record for email only when its stored code
// matches exactly (string comparison, leading zeros significant). A missing
// record and a mismatched code are both domain.ErrNotFound.
func (r *CodeRepo) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            strKey("email", email),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("verification code for %s: %w", email, domain.ErrNotFound)
	}
	var v domain.VerificationCode
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, err
	}
	if v.Code != code {
		return nil, fmt.Errorf("verification code for %s: %w", email, domain.ErrNotFound)
	}
	return &v, nil
}

// DeleteMatching removes the record for email only if it still holds code.
// Exactly one of several concurrent callers wins; the rest get
// domain.ErrNotFound from the failed condition.
func (r *CodeRepo) DeleteMatching(ctx context.Context, email, code string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("email", email),
		ConditionExpression:      aws.String("attribute_exists(email) AND #c = :c"),
		ExpressionAttributeNames: map[string]string{"#c": "code"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("verification code for %s already used: %w", email, domain.ErrNotFound)
		}
		return err
	}
	return nil
}
