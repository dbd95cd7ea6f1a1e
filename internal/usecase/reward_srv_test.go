package usecase

import (
	"context"
	"testing"

	"travel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestAddRewardAdjustsBalance(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users)
	user.RewardPoints = 50

	svc := NewRewardService(&stubRewardRepo{}, users, zap.NewNop())

	reward, err := svc.AddReward(context.Background(), &request.CreateRewardRequest{
		UserID:         user.ID.Hex(),
		PointsEarned:   100,
		PointsRedeemed: 30,
		Reason:         "festive bonus",
	})
	require.NoError(t, err)
	assert.Equal(t, 120, reward.PointsBalance)
	assert.Equal(t, 70, users.increments[user.ID])
}

func TestAddRewardUnknownUser(t *testing.T) {
	svc := NewRewardService(&stubRewardRepo{}, newStubUserRepo(), zap.NewNop())

	_, err := svc.AddReward(context.Background(), &request.CreateRewardRequest{
		UserID:       primitive.NewObjectID().Hex(),
		PointsEarned: 10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetRewardsExpandsUser(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users)
	rewards := &stubRewardRepo{}

	svc := NewRewardService(rewards, users, zap.NewNop())

	_, err := svc.AddReward(context.Background(), &request.CreateRewardRequest{
		UserID:       user.ID.Hex(),
		PointsEarned: 10,
	})
	require.NoError(t, err)

	list, err := svc.GetRewards(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "Asha", list[0].User.Name)
	assert.Equal(t, "asha@example.com", list[0].User.Email)
}
