package models

import "time"

type Poll struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `json:"nome" gorm:"size:100;not null;uniqueIndex"`
	Title     *string   `json:"titulo" gorm:"size:200"`
	Content   string    `json:"conteudo" gorm:"type:text;not null"`
	Media     *string   `json:"midia" gorm:"size:500"`
	Options   []Option  `json:"opcoes" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"criado_em"`
}

// Option is one answer of a Poll. Votes is a denormalized counter kept equal to the
// number of Vote rows pointing at the option.
type Option struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	PollID  uint   `json:"-" gorm:"not null;index"`
	Content string `json:"conteudo" gorm:"size:200;not null"`
	Votes   int    `json:"votos" gorm:"not null;default:0"`
}

func (Option) TableName() string { return "poll_options" }

// Vote records one user's choice in a poll. A user votes at most once per poll.
type Vote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"not null;uniqueIndex:idx_vote_user_poll"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PollID    uint      `json:"enquete_id" gorm:"not null;index;uniqueIndex:idx_vote_user_poll"`
	Poll      *Poll     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	OptionID  uint      `json:"opcao_id" gorm:"not null;index"`
	Option    *Option   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"criado_em"`
}

type CreateOptionRequest struct {
	Content string `json:"conteudo" validate:"required,max=200"`
}

type CreatePollRequest struct {
	Name    string                `json:"nome" validate:"required,max=100"`
	Title   *string               `json:"titulo" validate:"omitempty,max=200"`
	Content string                `json:"conteudo" validate:"required"`
	Media   *string               `json:"midia" validate:"omitempty,max=500"`
	Options []CreateOptionRequest `json:"opcoes_list" validate:"required,min=1,dive"`
}

type VoteRequest struct {
	OptionID uint `json:"opcao_id" validate:"required"`
}

type OptionResult struct {
	ID      uint   `json:"id"`
	Content string `json:"conteudo"`
	Votes   int    `json:"votos"`
}

// PollSummary is one row of the poll listing.
type PollSummary struct {
	ID        uint           `json:"id"`
	Author    string         `json:"usuario"`
	Name      string         `json:"nome"`
	Title     *string        `json:"titulo"`
	Content   string         `json:"conteudo"`
	Options   []OptionResult `json:"opcoes"`
	CreatedAt time.Time      `json:"criado_em"`
}

type PollDetail struct {
	ID        uint           `json:"id"`
	Author    string         `json:"usuario"`
	UserID    uint           `json:"usuario_id"`
	Name      string         `json:"nome"`
	Title     *string        `json:"titulo"`
	Content   string         `json:"conteudo"`
	Media     *string        `json:"midia"`
	Options   []OptionResult `json:"opcoes"`
	Likes     int64          `json:"curtidas"`
	CreatedAt time.Time      `json:"criado_em"`
}

type PollResult struct {
	ID         uint           `json:"id"`
	Title      *string        `json:"titulo"`
	TotalVotes int            `json:"total_votos"`
	Options    []OptionResult `json:"opcoes"`
}

// OptionResults converts the poll's options to their public view, in insertion order.
func (p *Poll) OptionResults() []OptionResult {
	out := make([]OptionResult, 0, len(p.Options))
	for _, o := range p.Options {
		out = append(out, OptionResult{ID: o.ID, Content: o.Content, Votes: o.Votes})
	}
	return out
}
