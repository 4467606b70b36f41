package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/email-otp-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatusService struct{ mock.Mock }

func (m *mockStatusService) List(ctx context.Context) ([]domain.StatusCheck, error) {
	args := m.Called(ctx)
	if s, _ := args.Get(0).([]domain.StatusCheck); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStatusService) Create(ctx context.Context, input domain.StatusCheckInput) (*domain.StatusCheck, error) {
	args := m.Called(ctx, input)
	if s, _ := args.Get(0).(*domain.StatusCheck); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestStatusList_EmptyIsJSONArray(t *testing.T) {
	svc := &mockStatusService{}
	svc.On("List", mock.Anything).Return(nil, nil)

	h := NewStatusHandler(svc)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestStatusCreate_OK(t *testing.T) {
	svc := &mockStatusService{}
	created := &domain.StatusCheck{
		StatusID:   "s1",
		ClientName: "probe-1",
		Timestamp:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	svc.On("Create", mock.Anything, domain.StatusCheckInput{ClientName: "probe-1"}).Return(created, nil)

	h := NewStatusHandler(svc)
	rec := postJSON(t, h.Create, "/status", `{"client_name":"probe-1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got domain.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.StatusID)
}

func TestStatusCreate_MissingClientName_Is422(t *testing.T) {
	svc := &mockStatusService{}
	h := NewStatusHandler(svc)
	rec := postJSON(t, h.Create, "/status", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
