package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type RewardService interface {
	AddReward(ctx context.Context, req *request.CreateRewardRequest) (*entity.Reward, error)
	GetRewards(ctx context.Context) ([]*response.RewardResponse, error)
}

type rewardService struct {
	rewards repository.RewardRepository
	users   repository.UserRepository
	log     *zap.Logger
}

func NewRewardService(rewards repository.RewardRepository, users repository.UserRepository, log *zap.Logger) RewardService {
	return &rewardService{
		rewards: rewards,
		users:   users,
		log:     log.With(zap.String("service", "reward")),
	}
}

func (s *rewardService) AddReward(ctx context.Context, req *request.CreateRewardRequest) (*entity.Reward, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %s", req.UserID)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.UserID)
	}

	delta := req.PointsEarned - req.PointsRedeemed
	now := time.Now()
	reward := &entity.Reward{
		Base:            entity.Base{CreatedAt: now, UpdatedAt: now},
		UserID:          userID,
		PointsEarned:    req.PointsEarned,
		PointsRedeemed:  req.PointsRedeemed,
		PointsBalance:   user.RewardPoints + delta,
		TransactionDate: now,
		Reason:          req.Reason,
	}

	if err := s.rewards.Create(ctx, reward); err != nil {
		return nil, err
	}

	// The cached balance on the user is adjusted best effort; the ledger
	// entry stands even if the adjustment fails.
	if err := s.users.IncrementRewardPoints(ctx, userID, delta); err != nil {
		s.log.Warn("Failed to adjust cached reward balance",
			zap.String("reward_id", reward.ID.Hex()),
			zap.String("user_id", req.UserID),
			zap.Int("delta", delta),
			zap.Error(err))
	}

	s.log.Info("Reward entry added",
		zap.String("reward_id", reward.ID.Hex()),
		zap.String("user_id", req.UserID),
		zap.Int("delta", delta))
	return reward, nil
}

func (s *rewardService) GetRewards(ctx context.Context) ([]*response.RewardResponse, error) {
	rewards, err := s.rewards.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		user, err := s.users.FindByID(ctx, reward.UserID)
		if err != nil {
			s.log.Warn("Failed to resolve reward user",
				zap.String("reward_id", reward.ID.Hex()),
				zap.Error(err))
		}
		result = append(result, response.NewRewardResponse(reward, user))
	}

	return result, nil
}
