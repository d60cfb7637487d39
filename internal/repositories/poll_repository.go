package repositories

import (
	"github.com/anonto42/rede-social/backend/internal/models"
	"gorm.io/gorm"
)

type PollRepository interface {
	CreatePoll(poll *models.Poll) error
	GetPollByID(id uint) (*models.Poll, error)
	ListPolls() ([]models.Poll, error)
	DeletePoll(id uint) error
	GetOption(pollID, optionID uint) (*models.Option, error)
	IncrementOptionVotes(pollID, optionID uint) error
	CountByUser(userID uint) (int64, error)
}

type PostgresPollRepository struct {
	db *gorm.DB
}

func NewPostgresPollRepository(db *gorm.DB) *PostgresPollRepository {
	return &PostgresPollRepository{db: db}
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("poll_options.id ASC")
}

// CreatePoll inserts the poll and its options in slice order. A taken name yields ErrDuplicate.
func (r *PostgresPollRepository) CreatePoll(poll *models.Poll) error {
	return translate(r.db.Create(poll).Error)
}

func (r *PostgresPollRepository) GetPollByID(id uint) (*models.Poll, error) {
	var poll models.Poll
	if err := r.db.Preload("User").Preload("Options", orderedOptions).First(&poll, id).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

func (r *PostgresPollRepository) ListPolls() ([]models.Poll, error) {
	var polls []models.Poll
	err := r.db.Preload("User").Preload("Options", orderedOptions).Order("id ASC").Find(&polls).Error
	return polls, err
}

// DeletePoll removes likes, votes and options before the poll itself.
func (r *PostgresPollRepository) DeletePoll(id uint) error {
	if err := r.db.Where("poll_id = ?", id).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("poll_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("poll_id = ?", id).Delete(&models.Option{}).Error; err != nil {
		return err
	}
	res := r.db.Delete(&models.Poll{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetOption finds optionID only if it belongs to pollID.
func (r *PostgresPollRepository) GetOption(pollID, optionID uint) (*models.Option, error) {
	var option models.Option
	if err := r.db.Where("id = ? AND poll_id = ?", optionID, pollID).First(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// IncrementOptionVotes bumps the counter in a single UPDATE so concurrent votes never lose increments.
func (r *PostgresPollRepository) IncrementOptionVotes(pollID, optionID uint) error {
	res := r.db.Model(&models.Option{}).
		Where("id = ? AND poll_id = ?", optionID, pollID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresPollRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Poll{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
