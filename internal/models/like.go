package models

import (
	"errors"
	"time"
)

// TargetKind tells which kind of content a Like points at.
type TargetKind int

const (
	TargetComment TargetKind = iota + 1
	TargetPoll
)

func (k TargetKind) String() string {
	switch k {
	case TargetComment:
		return "comment"
	case TargetPoll:
		return "poll"
	default:
		return "unknown"
	}
}

// LikeTarget is the likeable entity: exactly one comment or one poll.
type LikeTarget struct {
	Kind TargetKind
	ID   uint
}

func CommentTarget(id uint) LikeTarget { return LikeTarget{Kind: TargetComment, ID: id} }

func PollTarget(id uint) LikeTarget { return LikeTarget{Kind: TargetPoll, ID: id} }

var ErrInvalidLikeTarget = errors.New("like must reference exactly one of comment or poll")

// Like is stored with two nullable foreign keys; the check constraint and
// NewLike/Target keep exactly one of them set.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"not null;index;uniqueIndex:idx_like_user_comment;uniqueIndex:idx_like_user_poll"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CommentID *uint     `json:"comentario_id" gorm:"index;uniqueIndex:idx_like_user_comment;check:chk_like_single_target,(comment_id IS NULL) <> (poll_id IS NULL)"`
	Comment   *Comment  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PollID    *uint     `json:"enquete_id" gorm:"index;uniqueIndex:idx_like_user_poll"`
	Poll      *Poll     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"criado_em"`
}

// NewLike builds the row for userID liking target.
func NewLike(userID uint, target LikeTarget) (*Like, error) {
	if target.ID == 0 {
		return nil, ErrInvalidLikeTarget
	}
	like := &Like{UserID: userID}
	id := target.ID
	switch target.Kind {
	case TargetComment:
		like.CommentID = &id
	case TargetPoll:
		like.PollID = &id
	default:
		return nil, ErrInvalidLikeTarget
	}
	return like, nil
}

// Target decodes the stored foreign keys back into a LikeTarget.
func (l *Like) Target() (LikeTarget, error) {
	switch {
	case l.CommentID != nil && l.PollID == nil:
		return CommentTarget(*l.CommentID), nil
	case l.PollID != nil && l.CommentID == nil:
		return PollTarget(*l.PollID), nil
	default:
		return LikeTarget{}, ErrInvalidLikeTarget
	}
}

// LikeEntry is one liker in a like listing.
type LikeEntry struct {
	UserID    uint      `json:"usuario_id"`
	UserName  string    `json:"usuario_nome"`
	CreatedAt time.Time `json:"criado_em"`
}
