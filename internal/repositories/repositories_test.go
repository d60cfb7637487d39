package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/testutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, NewPostgresUserRepository(db).CreateUser(u))
	return u
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk violation", &pgconn.PgError{Code: "23503"}, false},
		{"wrapped postgres", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"sqlite", errors.New("UNIQUE constraint failed: users.email"), true},
		{"other", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKey(tt.err))
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedUser(t, db, "ana")

	err := NewPostgresUserRepository(db).CreateUser(&models.User{Name: "x", Email: "ana@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	exists, err := NewPostgresUserRepository(db).EmailExists("ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLikes_UniquePerTarget(t *testing.T) {
	db := testutil.NewTestDB(t)
	ana := seedUser(t, db, "ana")
	comment := &models.Comment{UserID: ana.ID, Content: "hi"}
	require.NoError(t, NewPostgresCommentRepository(db).CreateComment(comment))
	likes := NewPostgresLikeRepository(db)

	first, err := models.NewLike(ana.ID, models.CommentTarget(comment.ID))
	require.NoError(t, err)
	require.NoError(t, likes.CreateLike(first))

	again, err := models.NewLike(ana.ID, models.CommentTarget(comment.ID))
	require.NoError(t, err)
	assert.ErrorIs(t, likes.CreateLike(again), ErrDuplicate)

	liked, err := likes.HasUserLiked(ana.ID, models.CommentTarget(comment.ID))
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, likes.DeleteLike(ana.ID, models.CommentTarget(comment.ID)))
	assert.ErrorIs(t, likes.DeleteLike(ana.ID, models.CommentTarget(comment.ID)), gorm.ErrRecordNotFound)
}

func TestLikes_RejectsAmbiguousRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	ana := seedUser(t, db, "ana")
	likes := NewPostgresLikeRepository(db)

	assert.ErrorIs(t, likes.CreateLike(&models.Like{UserID: ana.ID}), models.ErrInvalidLikeTarget)

	one := uint(1)
	assert.ErrorIs(t, likes.CreateLike(&models.Like{UserID: ana.ID, CommentID: &one, PollID: &one}), models.ErrInvalidLikeTarget)

	// The check constraint backs the application rule at the storage layer.
	err := db.Exec("INSERT INTO likes (user_id, created_at) VALUES (?, CURRENT_TIMESTAMP)", ana.ID).Error
	assert.Error(t, err)
}

func TestCountGrouped(t *testing.T) {
	db := testutil.NewTestDB(t)
	ana := seedUser(t, db, "ana")
	comments := NewPostgresCommentRepository(db)
	replies := NewPostgresReplyRepository(db)

	c1 := &models.Comment{UserID: ana.ID, Content: "one"}
	c2 := &models.Comment{UserID: ana.ID, Content: "two"}
	require.NoError(t, comments.CreateComment(c1))
	require.NoError(t, comments.CreateComment(c2))
	for i := 0; i < 3; i++ {
		require.NoError(t, replies.CreateReply(&models.Reply{UserID: ana.ID, CommentID: c1.ID, Content: "r"}))
	}

	counts, err := replies.CountByComments([]uint{c1.ID, c2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts[c1.ID])
	assert.EqualValues(t, 0, counts[c2.ID])

	empty, err := replies.CountByComments(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFollows_SelfFollowRejectedByConstraint(t *testing.T) {
	db := testutil.NewTestDB(t)
	ana := seedUser(t, db, "ana")

	err := NewPostgresFollowRepository(db).CreateFollow(&models.Follow{FollowerID: ana.ID, FolloweeID: ana.ID})
	assert.Error(t, err)
}

func TestIncrementOptionVotes(t *testing.T) {
	db := testutil.NewTestDB(t)
	ana := seedUser(t, db, "ana")
	polls := NewPostgresPollRepository(db)

	p := &models.Poll{UserID: ana.ID, Name: "colors", Content: "?", Options: []models.Option{{Content: "red"}}}
	require.NoError(t, polls.CreatePoll(p))
	opt := p.Options[0].ID

	require.NoError(t, polls.IncrementOptionVotes(p.ID, opt))
	require.NoError(t, polls.IncrementOptionVotes(p.ID, opt))
	assert.ErrorIs(t, polls.IncrementOptionVotes(p.ID+1, opt), gorm.ErrRecordNotFound)

	got, err := polls.GetOption(p.ID, opt)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Votes)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	uow := NewUnitOfWork(db)
	boom := errors.New("boom")

	err := uow.Do(context.Background(), func(st *Store) error {
		if err := st.Users.CreateUser(&models.User{Name: "ana", Email: "ana@example.com", Password: "x"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}
