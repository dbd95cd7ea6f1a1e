package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type StateService interface {
	CreateState(ctx context.Context, req *request.StateRequest) (*entity.State, error)
	GetStates(ctx context.Context) ([]*entity.State, error)
	GetStateByID(ctx context.Context, id string) (*entity.State, error)
	UpdateState(ctx context.Context, id string, req *request.UpdateStateRequest) (*entity.State, error)
	DeleteState(ctx context.Context, id string) error
}

type stateService struct {
	states repository.StateRepository
	log    *zap.Logger
}

func NewStateService(states repository.StateRepository, log *zap.Logger) StateService {
	return &stateService{
		states: states,
		log:    log.With(zap.String("service", "state")),
	}
}

func (s *stateService) CreateState(ctx context.Context, req *request.StateRequest) (*entity.State, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	state := &entity.State{
		Base: entity.Base{CreatedAt: now, UpdatedAt: now},
		Name: req.Name,
		Code: req.Code,
	}

	if err := s.states.Create(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info("State created", zap.String("state_id", state.ID.Hex()), zap.String("name", state.Name))
	return state, nil
}

func (s *stateService) GetStates(ctx context.Context) ([]*entity.State, error) {
	return s.states.FindAll(ctx)
}

func (s *stateService) GetStateByID(ctx context.Context, id string) (*entity.State, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid state ID format: %s", id)
	}

	state, err := s.states.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("state %s not found", id)
	}

	return state, nil
}

func (s *stateService) UpdateState(ctx context.Context, id string, req *request.UpdateStateRequest) (*entity.State, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid state ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Code != nil {
		update["code"] = *req.Code
	}

	if len(update) == 0 {
		return s.GetStateByID(ctx, id)
	}
	update["updated_at"] = time.Now()

	state, err := s.states.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("state %s not found", id)
	}

	s.log.Info("State updated", zap.String("state_id", id))
	return state, nil
}

func (s *stateService) DeleteState(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid state ID format: %s", id)
	}

	return s.states.Delete(ctx, oid)
}
