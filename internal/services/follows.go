package services

import (
	"context"
	"errors"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
	"gorm.io/gorm"
)

// Follow adds the actor -> target edge and returns the followed user.
func (s *SocialService) Follow(ctx context.Context, actor *models.User, targetID uint) (*models.User, error) {
	var target *models.User
	err := s.mutate(ctx, "follow", func(st *repositories.Store) error {
		u, err := loadUser(st, targetID)
		if err != nil {
			return err
		}
		if u.ID == actor.ID {
			return BadRequest(msgSelfFollow)
		}
		following, err := st.Follows.IsFollowing(actor.ID, u.ID)
		if err != nil {
			return err
		}
		if following {
			return Conflict(msgAlreadyFollowing)
		}
		if err := st.Follows.CreateFollow(&models.Follow{FollowerID: actor.ID, FolloweeID: u.ID}); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict(msgAlreadyFollowing)
			}
			return err
		}
		target = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Unfollow removes the actor -> target edge and returns the unfollowed user.
func (s *SocialService) Unfollow(ctx context.Context, actor *models.User, targetID uint) (*models.User, error) {
	var target *models.User
	err := s.mutate(ctx, "unfollow", func(st *repositories.Store) error {
		u, err := loadUser(st, targetID)
		if err != nil {
			return err
		}
		if err := st.Follows.DeleteFollow(actor.ID, u.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadRequest(msgNotFollowing)
			}
			return err
		}
		target = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

func (s *SocialService) ListFollowers(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.listEdges(ctx, userID, func(st *repositories.Store) ([]models.User, error) {
		return st.Follows.GetFollowers(userID)
	})
}

func (s *SocialService) ListFollowing(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.listEdges(ctx, userID, func(st *repositories.Store) ([]models.User, error) {
		return st.Follows.GetFollowing(userID)
	})
}

func (s *SocialService) listEdges(ctx context.Context, userID uint, query func(st *repositories.Store) ([]models.User, error)) ([]models.UserSummary, error) {
	var out []models.UserSummary
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		if _, err := loadUser(st, userID); err != nil {
			return err
		}
		users, err := query(st)
		if err != nil {
			return err
		}
		out = make([]models.UserSummary, 0, len(users))
		for _, u := range users {
			out = append(out, models.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email})
		}
		return nil
	})
	return out, err
}

// UserProfile returns the public profile of a user with follow and content counts.
func (s *SocialService) UserProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile *models.UserProfile
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		u, err := loadUser(st, userID)
		if err != nil {
			return err
		}
		p := &models.UserProfile{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
		if p.FollowersCount, err = st.Follows.GetFollowersCount(u.ID); err != nil {
			return err
		}
		if p.FollowingCount, err = st.Follows.GetFollowingCount(u.ID); err != nil {
			return err
		}
		if p.CommentsCount, err = st.Comments.CountByUser(u.ID); err != nil {
			return err
		}
		if p.PollsCount, err = st.Polls.CountByUser(u.ID); err != nil {
			return err
		}
		profile = p
		return nil
	})
	return profile, err
}
