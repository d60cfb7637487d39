package services

import (
	"context"
	"errors"

	"github.com/anonto42/rede-social/backend/internal/metrics"
	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	msgCommentNotFound   = "Comentário não encontrado"
	msgCommentForbidden  = "Você não tem permissão para deletar este comentário"
	msgCommentLiked      = "Você já curtiu este comentário"
	msgCommentNotLiked   = "Você não curtiu este comentário"
	msgUserNotFound      = "Usuário não encontrado"
	msgSelfFollow        = "Você não pode seguir a si mesmo"
	msgAlreadyFollowing  = "Você já segue este usuário"
	msgNotFollowing      = "Você não segue este usuário"
	msgPollNotFound      = "Enquete não encontrada"
	msgPollForbidden     = "Você não tem permissão para deletar esta enquete"
	msgPollNameTaken     = "Já existe uma enquete com este nome"
	msgPollLiked         = "Você já curtiu esta enquete"
	msgPollNotLiked      = "Você não curtiu esta enquete"
	msgOptionNotFound    = "Opção não encontrada"
	msgAlreadyVoted      = "Você já votou nesta enquete"
	msgInvalidLikeTarget = "Alvo de curtida inválido"
)

// SocialService implements the comment, reply, like, follow and poll use cases.
// Every method runs in exactly one unit of work.
type SocialService struct {
	uow *repositories.UnitOfWork
	log *logrus.Logger
}

func NewSocialService(uow *repositories.UnitOfWork, log *logrus.Logger) *SocialService {
	return &SocialService{uow: uow, log: log}
}

// mutate runs fn in a unit of work and records the outcome under action.
func (s *SocialService) mutate(ctx context.Context, action string, fn func(st *repositories.Store) error) error {
	err := s.uow.Do(ctx, fn)
	metrics.RecordSocialAction(action, outcome(err))
	if err != nil && KindOf(err) == 0 {
		s.log.WithError(err).WithField("action", action).Error("social operation failed")
	}
	return err
}

// notFound turns gorm.ErrRecordNotFound into a NotFound error with msg.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(msg)
	}
	return err
}

func loadComment(st *repositories.Store, id uint) (*models.Comment, error) {
	comment, err := st.Comments.GetCommentByID(id)
	if err != nil {
		return nil, notFound(err, msgCommentNotFound)
	}
	return comment, nil
}

func loadPoll(st *repositories.Store, id uint) (*models.Poll, error) {
	poll, err := st.Polls.GetPollByID(id)
	if err != nil {
		return nil, notFound(err, msgPollNotFound)
	}
	return poll, nil
}

func loadUser(st *repositories.Store, id uint) (*models.User, error) {
	user, err := st.Users.GetUserByID(id)
	if err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return user, nil
}

func authorName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}

// like and unlike are shared by comments and polls.
func like(st *repositories.Store, actorID uint, target models.LikeTarget, alreadyMsg string) error {
	liked, err := st.Likes.HasUserLiked(actorID, target)
	if err != nil {
		return err
	}
	if liked {
		return Conflict(alreadyMsg)
	}
	row, err := models.NewLike(actorID, target)
	if err != nil {
		return newError(KindValidation, msgInvalidLikeTarget)
	}
	if err := st.Likes.CreateLike(row); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return Conflict(alreadyMsg)
		}
		return err
	}
	return nil
}

func unlike(st *repositories.Store, actorID uint, target models.LikeTarget, notLikedMsg string) error {
	if err := st.Likes.DeleteLike(actorID, target); err != nil {
		return notFound(err, notLikedMsg)
	}
	return nil
}

func likeEntries(st *repositories.Store, target models.LikeTarget) ([]models.LikeEntry, error) {
	likes, err := st.Likes.ListByTarget(target)
	if err != nil {
		return nil, err
	}
	entries := make([]models.LikeEntry, 0, len(likes))
	for _, l := range likes {
		entries = append(entries, models.LikeEntry{
			UserID:    l.UserID,
			UserName:  authorName(l.User),
			CreatedAt: l.CreatedAt,
		})
	}
	return entries, nil
}
