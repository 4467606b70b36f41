package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/email-otp-api/internal/domain"
	"github.com/email-otp-api/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatusStore struct{ mock.Mock }

func (m *mockStatusStore) Scan(ctx context.Context) ([]domain.StatusCheck, error) {
	args := m.Called(ctx)
	if s, _ := args.Get(0).([]domain.StatusCheck); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStatusStore) Put(ctx context.Context, s *domain.StatusCheck) error {
	return m.Called(ctx, s).Error(0)
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	repo := &mockStatusStore{}
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.On("Put", mock.Anything, mock.MatchedBy(func(s *domain.StatusCheck) bool {
		return s.StatusID != "" && s.ClientName == "probe-1" && s.Timestamp.Equal(at)
	})).Return(nil)

	svc := NewService(repo, clock.Fixed(at))
	check, err := svc.Create(context.Background(), domain.StatusCheckInput{ClientName: "probe-1"})

	require.NoError(t, err)
	assert.Equal(t, "probe-1", check.ClientName)
	repo.AssertExpectations(t)
}

func TestList_PassesThrough(t *testing.T) {
	repo := &mockStatusStore{}
	repo.On("Scan", mock.Anything).Return([]domain.StatusCheck{{StatusID: "s1"}}, nil)

	svc := NewService(repo, nil)
	checks, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, checks, 1)
}

func TestCreate_StoreError(t *testing.T) {
	repo := &mockStatusStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := NewService(repo, nil)
	_, err := svc.Create(context.Background(), domain.StatusCheckInput{ClientName: "probe-1"})
	assert.Error(t, err)
}
