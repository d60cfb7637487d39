package services

import (
	"context"
	"errors"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
)

// CreatePoll stores the poll and one option per entry of req.Options, in order.
func (s *SocialService) CreatePoll(ctx context.Context, actor *models.User, req models.CreatePollRequest) (*models.Poll, error) {
	poll := &models.Poll{
		UserID:  actor.ID,
		Name:    req.Name,
		Title:   req.Title,
		Content: req.Content,
		Media:   req.Media,
		Options: make([]models.Option, 0, len(req.Options)),
	}
	for _, o := range req.Options {
		poll.Options = append(poll.Options, models.Option{Content: o.Content})
	}

	err := s.mutate(ctx, "create_poll", func(st *repositories.Store) error {
		if err := st.Polls.CreatePoll(poll); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict(msgPollNameTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return poll, nil
}

func (s *SocialService) ListPolls(ctx context.Context) ([]models.PollSummary, error) {
	var out []models.PollSummary
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		polls, err := st.Polls.ListPolls()
		if err != nil {
			return err
		}
		out = make([]models.PollSummary, 0, len(polls))
		for i := range polls {
			p := &polls[i]
			out = append(out, models.PollSummary{
				ID:        p.ID,
				Author:    authorName(p.User),
				Name:      p.Name,
				Title:     p.Title,
				Content:   p.Content,
				Options:   p.OptionResults(),
				CreatedAt: p.CreatedAt,
			})
		}
		return nil
	})
	return out, err
}

func (s *SocialService) GetPoll(ctx context.Context, id uint) (*models.PollDetail, error) {
	var detail *models.PollDetail
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		p, err := loadPoll(st, id)
		if err != nil {
			return err
		}
		likes, err := st.Likes.CountByTarget(models.PollTarget(id))
		if err != nil {
			return err
		}
		detail = &models.PollDetail{
			ID:        p.ID,
			Author:    authorName(p.User),
			UserID:    p.UserID,
			Name:      p.Name,
			Title:     p.Title,
			Content:   p.Content,
			Media:     p.Media,
			Options:   p.OptionResults(),
			Likes:     likes,
			CreatedAt: p.CreatedAt,
		}
		return nil
	})
	return detail, err
}

// Vote records the actor's single vote in a poll and bumps the option counter.
// An option from another poll is reported as not found.
func (s *SocialService) Vote(ctx context.Context, actor *models.User, pollID uint, req models.VoteRequest) error {
	return s.mutate(ctx, "vote", func(st *repositories.Store) error {
		if _, err := loadPoll(st, pollID); err != nil {
			return err
		}
		if _, err := st.Polls.GetOption(pollID, req.OptionID); err != nil {
			return notFound(err, msgOptionNotFound)
		}
		voted, err := st.Votes.HasUserVoted(actor.ID, pollID)
		if err != nil {
			return err
		}
		if voted {
			return Conflict(msgAlreadyVoted)
		}

		vote := &models.Vote{UserID: actor.ID, PollID: pollID, OptionID: req.OptionID}
		if err := st.Votes.CreateVote(vote); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict(msgAlreadyVoted)
			}
			return err
		}
		if err := st.Polls.IncrementOptionVotes(pollID, req.OptionID); err != nil {
			return notFound(err, msgOptionNotFound)
		}
		return nil
	})
}

// PollResult reports per-option counters and their sum.
func (s *SocialService) PollResult(ctx context.Context, id uint) (*models.PollResult, error) {
	var result *models.PollResult
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		p, err := loadPoll(st, id)
		if err != nil {
			return err
		}
		r := &models.PollResult{ID: p.ID, Title: p.Title, Options: p.OptionResults()}
		for _, o := range r.Options {
			r.TotalVotes += o.Votes
		}
		result = r
		return nil
	})
	return result, err
}

// DeletePoll lets only the author delete; options, votes and likes go with it.
func (s *SocialService) DeletePoll(ctx context.Context, actor *models.User, id uint) error {
	return s.mutate(ctx, "delete_poll", func(st *repositories.Store) error {
		p, err := loadPoll(st, id)
		if err != nil {
			return err
		}
		if p.UserID != actor.ID {
			return Forbidden(msgPollForbidden)
		}
		return st.Polls.DeletePoll(id)
	})
}

func (s *SocialService) LikePoll(ctx context.Context, actor *models.User, id uint) error {
	return s.mutate(ctx, "like_poll", func(st *repositories.Store) error {
		if _, err := loadPoll(st, id); err != nil {
			return err
		}
		return like(st, actor.ID, models.PollTarget(id), msgPollLiked)
	})
}

func (s *SocialService) UnlikePoll(ctx context.Context, actor *models.User, id uint) error {
	return s.mutate(ctx, "unlike_poll", func(st *repositories.Store) error {
		return unlike(st, actor.ID, models.PollTarget(id), msgPollNotLiked)
	})
}

func (s *SocialService) ListPollLikes(ctx context.Context, id uint) ([]models.LikeEntry, error) {
	var entries []models.LikeEntry
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		if _, err := loadPoll(st, id); err != nil {
			return err
		}
		var err error
		entries, err = likeEntries(st, models.PollTarget(id))
		return err
	})
	return entries, err
}
