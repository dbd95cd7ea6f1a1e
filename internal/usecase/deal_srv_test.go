package usecase

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyDealWithinWindow(t *testing.T) {
	repo := &stubDealRepo{deals: []*entity.Deal{{
		Code:      "SUMMER10",
		Status:    entity.DealStatusActive,
		ValidFrom: time.Now().Add(-time.Hour),
		ValidTo:   time.Now().Add(time.Hour),
	}}}
	svc := NewDealService(repo, zap.NewNop())

	deal, err := svc.ApplyDeal(context.Background(), &request.ApplyDealRequest{Code: "SUMMER10"})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", deal.Code)
}

func TestApplyDealExpired(t *testing.T) {
	repo := &stubDealRepo{deals: []*entity.Deal{{
		Code:      "SUMMER10",
		Status:    entity.DealStatusActive,
		ValidFrom: time.Now().Add(-48 * time.Hour),
		ValidTo:   time.Now().Add(-24 * time.Hour),
	}}}
	svc := NewDealService(repo, zap.NewNop())

	_, err := svc.ApplyDeal(context.Background(), &request.ApplyDealRequest{Code: "SUMMER10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDealInactiveStatus(t *testing.T) {
	repo := &stubDealRepo{deals: []*entity.Deal{{
		Code:      "SUMMER10",
		Status:    entity.DealStatusExpired,
		ValidFrom: time.Now().Add(-time.Hour),
		ValidTo:   time.Now().Add(time.Hour),
	}}}
	svc := NewDealService(repo, zap.NewNop())

	// Window is current but status says expired; status wins.
	_, err := svc.ApplyDeal(context.Background(), &request.ApplyDealRequest{Code: "SUMMER10"})
	require.Error(t, err)
}

func TestCreateDealInvalidWindow(t *testing.T) {
	svc := NewDealService(&stubDealRepo{}, zap.NewNop())

	now := time.Now()
	_, err := svc.CreateDeal(context.Background(), &request.CreateDealRequest{
		Code:          "BACKWARDS",
		DiscountType:  "flat",
		DiscountValue: 100,
		ValidFrom:     now,
		ValidTo:       now.Add(-time.Hour),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateDealDefaultsActive(t *testing.T) {
	svc := NewDealService(&stubDealRepo{}, zap.NewNop())

	now := time.Now()
	deal, err := svc.CreateDeal(context.Background(), &request.CreateDealRequest{
		Code:          "NEWDEAL",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ValidFrom:     now,
		ValidTo:       now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusActive, deal.Status)
}
