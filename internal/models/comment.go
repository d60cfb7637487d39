package models

import "time"

// Comment is a top-level post authored by a user.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title     *string   `json:"titulo" gorm:"size:500"`
	Media     *string   `json:"midia" gorm:"size:500"`
	Content   string    `json:"conteudo" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"criado_em"`
}

// Reply answers a Comment.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CommentID uint      `json:"comentario_id" gorm:"not null;index"`
	Comment   *Comment  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Content   string    `json:"conteudo" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"criado_em"`
}

type CreateCommentRequest struct {
	Title   *string `json:"titulo" validate:"omitempty,max=500"`
	Content string  `json:"conteudo" validate:"required"`
	Media   *string `json:"midia" validate:"omitempty,max=500"`
}

type CreateReplyRequest struct {
	Content string `json:"conteudo" validate:"required"`
}

// CommentSummary is one row of the comment listing.
type CommentSummary struct {
	ID        uint      `json:"id"`
	Author    string    `json:"usuario"`
	UserID    uint      `json:"usuario_id"`
	Title     *string   `json:"titulo"`
	Content   string    `json:"conteudo"`
	Media     *string   `json:"midia"`
	Likes     int64     `json:"curtidas"`
	Replies   int64     `json:"respostas"`
	CreatedAt time.Time `json:"criado_em"`
}

// CommentDetail is a single comment with its replies inlined.
type CommentDetail struct {
	ID        uint          `json:"id"`
	Author    string        `json:"usuario"`
	UserID    uint          `json:"usuario_id"`
	Title     *string       `json:"titulo"`
	Content   string        `json:"conteudo"`
	Media     *string       `json:"midia"`
	Likes     int64         `json:"curtidas"`
	Replies   []ReplyDetail `json:"respostas"`
	CreatedAt time.Time     `json:"criado_em"`
}

type ReplyDetail struct {
	ID        uint      `json:"id"`
	Author    string    `json:"usuario"`
	UserID    uint      `json:"usuario_id"`
	Content   string    `json:"conteudo"`
	CreatedAt time.Time `json:"criado_em"`
}
