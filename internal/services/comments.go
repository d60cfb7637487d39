package services

import (
	"context"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
)

func (s *SocialService) CreateComment(ctx context.Context, actor *models.User, req models.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:  actor.ID,
		Title:   req.Title,
		Content: req.Content,
		Media:   req.Media,
	}
	err := s.mutate(ctx, "create_comment", func(st *repositories.Store) error {
		return st.Comments.CreateComment(comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns every comment with like and reply counts computed now.
func (s *SocialService) ListComments(ctx context.Context) ([]models.CommentSummary, error) {
	var out []models.CommentSummary
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		comments, err := st.Comments.ListComments()
		if err != nil {
			return err
		}
		ids := make([]uint, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.ID)
		}
		likes, err := st.Likes.CountByTargets(models.TargetComment, ids)
		if err != nil {
			return err
		}
		replies, err := st.Replies.CountByComments(ids)
		if err != nil {
			return err
		}

		out = make([]models.CommentSummary, 0, len(comments))
		for _, c := range comments {
			out = append(out, models.CommentSummary{
				ID:        c.ID,
				Author:    authorName(c.User),
				UserID:    c.UserID,
				Title:     c.Title,
				Content:   c.Content,
				Media:     c.Media,
				Likes:     likes[c.ID],
				Replies:   replies[c.ID],
				CreatedAt: c.CreatedAt,
			})
		}
		return nil
	})
	return out, err
}

func (s *SocialService) GetComment(ctx context.Context, id uint) (*models.CommentDetail, error) {
	var detail *models.CommentDetail
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		comment, err := loadComment(st, id)
		if err != nil {
			return err
		}
		likes, err := st.Likes.CountByTarget(models.CommentTarget(id))
		if err != nil {
			return err
		}
		replies, err := replyDetails(st, id)
		if err != nil {
			return err
		}
		detail = &models.CommentDetail{
			ID:        comment.ID,
			Author:    authorName(comment.User),
			UserID:    comment.UserID,
			Title:     comment.Title,
			Content:   comment.Content,
			Media:     comment.Media,
			Likes:     likes,
			Replies:   replies,
			CreatedAt: comment.CreatedAt,
		}
		return nil
	})
	return detail, err
}

// DeleteComment lets only the author delete; replies and likes go with it.
func (s *SocialService) DeleteComment(ctx context.Context, actor *models.User, id uint) error {
	return s.mutate(ctx, "delete_comment", func(st *repositories.Store) error {
		comment, err := loadComment(st, id)
		if err != nil {
			return err
		}
		if comment.UserID != actor.ID {
			return Forbidden(msgCommentForbidden)
		}
		return st.Comments.DeleteComment(id)
	})
}

func (s *SocialService) LikeComment(ctx context.Context, actor *models.User, id uint) error {
	return s.mutate(ctx, "like_comment", func(st *repositories.Store) error {
		if _, err := loadComment(st, id); err != nil {
			return err
		}
		return like(st, actor.ID, models.CommentTarget(id), msgCommentLiked)
	})
}

func (s *SocialService) UnlikeComment(ctx context.Context, actor *models.User, id uint) error {
	return s.mutate(ctx, "unlike_comment", func(st *repositories.Store) error {
		return unlike(st, actor.ID, models.CommentTarget(id), msgCommentNotLiked)
	})
}

func (s *SocialService) ListCommentLikes(ctx context.Context, id uint) ([]models.LikeEntry, error) {
	var entries []models.LikeEntry
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		if _, err := loadComment(st, id); err != nil {
			return err
		}
		var err error
		entries, err = likeEntries(st, models.CommentTarget(id))
		return err
	})
	return entries, err
}

func (s *SocialService) ReplyToComment(ctx context.Context, actor *models.User, id uint, req models.CreateReplyRequest) (*models.Reply, error) {
	reply := &models.Reply{
		UserID:    actor.ID,
		CommentID: id,
		Content:   req.Content,
	}
	err := s.mutate(ctx, "reply", func(st *repositories.Store) error {
		if _, err := loadComment(st, id); err != nil {
			return err
		}
		return st.Replies.CreateReply(reply)
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *SocialService) ListReplies(ctx context.Context, id uint) ([]models.ReplyDetail, error) {
	var out []models.ReplyDetail
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		if _, err := loadComment(st, id); err != nil {
			return err
		}
		var err error
		out, err = replyDetails(st, id)
		return err
	})
	return out, err
}

func replyDetails(st *repositories.Store, commentID uint) ([]models.ReplyDetail, error) {
	replies, err := st.Replies.ListByComment(commentID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ReplyDetail, 0, len(replies))
	for _, r := range replies {
		out = append(out, models.ReplyDetail{
			ID:        r.ID,
			Author:    authorName(r.User),
			UserID:    r.UserID,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
