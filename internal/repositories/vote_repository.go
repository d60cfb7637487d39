package repositories

import (
	"github.com/anonto42/rede-social/backend/internal/models"
	"gorm.io/gorm"
)

type VoteRepository interface {
	CreateVote(vote *models.Vote) error
	HasUserVoted(userID, pollID uint) (bool, error)
	CountByPoll(pollID uint) (int64, error)
}

type PostgresVoteRepository struct {
	db *gorm.DB
}

func NewPostgresVoteRepository(db *gorm.DB) *PostgresVoteRepository {
	return &PostgresVoteRepository{db: db}
}

// CreateVote inserts vote; a second vote by the same user in the same poll yields ErrDuplicate.
func (r *PostgresVoteRepository) CreateVote(vote *models.Vote) error {
	return translate(r.db.Create(vote).Error)
}

func (r *PostgresVoteRepository) HasUserVoted(userID, pollID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Where("user_id = ? AND poll_id = ?", userID, pollID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresVoteRepository) CountByPoll(pollID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Where("poll_id = ?", pollID).Count(&count).Error
	return count, err
}
