package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"pr_report/internal/domain/entity"
)

type MockSourceTracker struct {
	mock.Mock
}

func (m *MockSourceTracker) ListPullRequests(ctx context.Context, since time.Time, until *time.Time) ([]entity.PullRequest, error) {
	args := m.Called(ctx, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PullRequest), args.Error(1)
}

func (m *MockSourceTracker) ListComments(ctx context.Context, number int) ([]entity.Comment, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

type MockCardResolver struct {
	mock.Mock
}

func (m *MockCardResolver) ResolveCard(ctx context.Context, cardID string) (entity.Card, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(entity.Card), args.Error(1)
}
