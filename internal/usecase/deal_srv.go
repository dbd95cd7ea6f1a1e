package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type DealService interface {
	CreateDeal(ctx context.Context, req *request.CreateDealRequest) (*entity.Deal, error)
	GetDeals(ctx context.Context) ([]*entity.Deal, error)

	// ApplyDeal checks eligibility at the moment of the call; it does not
	// reserve or consume the deal.
	ApplyDeal(ctx context.Context, req *request.ApplyDealRequest) (*entity.Deal, error)
}

type dealService struct {
	deals repository.DealRepository
	log   *zap.Logger
}

func NewDealService(deals repository.DealRepository, log *zap.Logger) DealService {
	return &dealService{
		deals: deals,
		log:   log.With(zap.String("service", "deal")),
	}
}

func (s *dealService) CreateDeal(ctx context.Context, req *request.CreateDealRequest) (*entity.Deal, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !req.ValidTo.After(req.ValidFrom) {
		return nil, fmt.Errorf("validation failed: validTo must be after validFrom")
	}

	applicable := make([]primitive.ObjectID, 0, len(req.ApplicablePackages))
	for _, id := range req.ApplicablePackages {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid package ID format: %s", id)
		}
		applicable = append(applicable, oid)
	}

	status := entity.DealStatus(req.Status)
	if status == "" {
		status = entity.DealStatusActive
	}

	now := time.Now()
	deal := &entity.Deal{
		Base:               entity.Base{CreatedAt: now, UpdatedAt: now},
		Code:               req.Code,
		DiscountType:       entity.DiscountType(req.DiscountType),
		DiscountValue:      req.DiscountValue,
		ValidFrom:          req.ValidFrom,
		ValidTo:            req.ValidTo,
		ApplicablePackages: applicable,
		UsageLimit:         req.UsageLimit,
		Status:             status,
	}

	if err := s.deals.Create(ctx, deal); err != nil {
		if repository.IsDuplicateErr(err) {
			return nil, fmt.Errorf("deal code %s already exists", req.Code)
		}
		return nil, err
	}

	s.log.Info("Deal created", zap.String("deal_id", deal.ID.Hex()), zap.String("code", deal.Code))
	return deal, nil
}

func (s *dealService) GetDeals(ctx context.Context) ([]*entity.Deal, error) {
	return s.deals.FindAll(ctx)
}

func (s *dealService) ApplyDeal(ctx context.Context, req *request.ApplyDealRequest) (*entity.Deal, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	deal, err := s.deals.FindActiveByCode(ctx, req.Code, time.Now())
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, fmt.Errorf("deal %s not found or expired", req.Code)
	}

	s.log.Info("Deal applied", zap.String("code", req.Code))
	return deal, nil
}
