package status

import (
	"context"

	"github.com/email-otp-api/internal/domain"
	"github.com/email-otp-api/internal/pkg/clock"
	"github.com/email-otp-api/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context) ([]domain.StatusCheck, error)
	Create(ctx context.Context, input domain.StatusCheckInput) (*domain.StatusCheck, error)
}

type statusStore interface {
	Scan(ctx context.Context) ([]domain.StatusCheck, error)
	Put(ctx context.Context, s *domain.StatusCheck) error
}

type service struct {
	repo statusStore
	clk  clock.Clock
}

func NewService(repo statusStore, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &service{repo: repo, clk: clk}
}

func (s *service) List(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Create(ctx context.Context, input domain.StatusCheckInput) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		StatusID:   id.New(),
		ClientName: input.ClientName,
		Timestamp:  s.clk.Now(),
	}
	if err := s.repo.Put(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}
