package repositories

import (
	"github.com/anonto42/rede-social/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(userID uint, target models.LikeTarget) error
	HasUserLiked(userID uint, target models.LikeTarget) (bool, error)
	ListByTarget(target models.LikeTarget) ([]models.Like, error)
	CountByTarget(target models.LikeTarget) (int64, error)
	CountByTargets(kind models.TargetKind, ids []uint) (map[uint]int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func targetColumn(kind models.TargetKind) (string, error) {
	switch kind {
	case models.TargetComment:
		return "comment_id", nil
	case models.TargetPoll:
		return "poll_id", nil
	default:
		return "", models.ErrInvalidLikeTarget
	}
}

func (r *PostgresLikeRepository) byTarget(target models.LikeTarget) (*gorm.DB, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return nil, err
	}
	return r.db.Where(column+" = ?", target.ID), nil
}

// CreateLike inserts like; a second like on the same target yields ErrDuplicate.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	if _, err := like.Target(); err != nil {
		return err
	}
	return translate(r.db.Create(like).Error)
}

// DeleteLike removes the like of userID on target, gorm.ErrRecordNotFound if there was none.
func (r *PostgresLikeRepository) DeleteLike(userID uint, target models.LikeTarget) error {
	q, err := r.byTarget(target)
	if err != nil {
		return err
	}
	res := q.Where("user_id = ?", userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresLikeRepository) HasUserLiked(userID uint, target models.LikeTarget) (bool, error) {
	q, err := r.byTarget(target)
	if err != nil {
		return false, err
	}
	var count int64
	if err := q.Model(&models.Like{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByTarget returns the likes on target with their users, oldest first.
func (r *PostgresLikeRepository) ListByTarget(target models.LikeTarget) ([]models.Like, error) {
	q, err := r.byTarget(target)
	if err != nil {
		return nil, err
	}
	var likes []models.Like
	if err := q.Preload("User").Order("id ASC").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *PostgresLikeRepository) CountByTarget(target models.LikeTarget) (int64, error) {
	q, err := r.byTarget(target)
	if err != nil {
		return 0, err
	}
	var count int64
	err = q.Model(&models.Like{}).Count(&count).Error
	return count, err
}

func (r *PostgresLikeRepository) CountByTargets(kind models.TargetKind, ids []uint) (map[uint]int64, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return nil, err
	}
	return countGrouped(r.db.Model(&models.Like{}), column, ids)
}
