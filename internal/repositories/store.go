package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories bound to one *gorm.DB, usually a transaction.
type Store struct {
	Users    UserRepository
	Comments CommentRepository
	Replies  ReplyRepository
	Likes    LikeRepository
	Follows  FollowRepository
	Polls    PollRepository
	Votes    VoteRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewPostgresUserRepository(db),
		Comments: NewPostgresCommentRepository(db),
		Replies:  NewPostgresReplyRepository(db),
		Likes:    NewPostgresLikeRepository(db),
		Follows:  NewPostgresFollowRepository(db),
		Polls:    NewPostgresPollRepository(db),
		Votes:    NewPostgresVoteRepository(db),
	}
}

// UnitOfWork runs each request's work inside a single transaction.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do commits when fn returns nil and rolls back on error or panic. The
// connection goes back to the pool in every case.
func (u *UnitOfWork) Do(ctx context.Context, fn func(st *Store) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
