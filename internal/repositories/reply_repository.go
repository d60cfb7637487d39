package repositories

import (
	"github.com/anonto42/rede-social/backend/internal/models"
	"gorm.io/gorm"
)

type ReplyRepository interface {
	CreateReply(reply *models.Reply) error
	ListByComment(commentID uint) ([]models.Reply, error)
	CountByComments(commentIDs []uint) (map[uint]int64, error)
}

type PostgresReplyRepository struct {
	db *gorm.DB
}

func NewPostgresReplyRepository(db *gorm.DB) *PostgresReplyRepository {
	return &PostgresReplyRepository{db: db}
}

func (r *PostgresReplyRepository) CreateReply(reply *models.Reply) error {
	return r.db.Create(reply).Error
}

// ListByComment returns the replies of a comment with their authors, oldest first.
func (r *PostgresReplyRepository) ListByComment(commentID uint) ([]models.Reply, error) {
	var replies []models.Reply
	err := r.db.Preload("User").Where("comment_id = ?", commentID).Order("id ASC").Find(&replies).Error
	return replies, err
}

func (r *PostgresReplyRepository) CountByComments(commentIDs []uint) (map[uint]int64, error) {
	return countGrouped(r.db.Model(&models.Reply{}), "comment_id", commentIDs)
}

type groupCount struct {
	GroupKey uint
	Total    int64
}

// countGrouped counts rows of q per value of column, restricted to ids.
func countGrouped(q *gorm.DB, column string, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	var rows []groupCount
	err := q.Select(column+" AS group_key, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.GroupKey] = row.Total
	}
	return counts, nil
}
