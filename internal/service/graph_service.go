package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// GraphService provides follow/unfollow logic over the follower graph.
type GraphService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewGraphService returns a new GraphService.
func NewGraphService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *GraphService {
	return &GraphService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// ToggleFollow flips the follow state for (followerID, followeeID) and
// returns the resulting state: true when the follower now follows the
// followee. Self-follows are rejected before any lookup.
func (s *GraphService) ToggleFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if followerID == followeeID {
		return false, models.NewInvalidInputError("Cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return false, err
	}

	return s.followRepo.Toggle(ctx, followerID, followeeID)
}

// IsFollowing reports whether follower follows followee, grounded in
// the relation itself rather than the cached counters.
func (s *GraphService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}
