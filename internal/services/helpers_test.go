package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/anonto42/rede-social/backend/internal/testutil"
	"github.com/anonto42/rede-social/backend/internal/token"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	uow    *repositories.UnitOfWork
	tokens *token.Service
	auth   *services.AuthService
	social *services.SocialService
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := &fixture{
		db:  db,
		uow: repositories.NewUnitOfWork(db),
		now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.tokens = token.NewService([]byte("test-secret"), token.WithClock(func() time.Time { return f.now }))
	log := testutil.Logger()
	f.auth = services.NewAuthService(f.uow, f.tokens, 30*time.Minute, 7*24*time.Hour, log)
	f.social = services.NewSocialService(f.uow, log)
	return f
}

// user inserts a user directly, skipping password hashing.
func (f *fixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: fmt.Sprintf("%s@example.com", name), Password: "x"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) comment(t *testing.T, author *models.User, content string) *models.Comment {
	t.Helper()
	c, err := f.social.CreateComment(context.Background(), author, models.CreateCommentRequest{Content: content})
	require.NoError(t, err)
	return c
}

func (f *fixture) poll(t *testing.T, author *models.User, name string, options ...string) *models.Poll {
	t.Helper()
	req := models.CreatePollRequest{Name: name, Content: "?"}
	for _, o := range options {
		req.Options = append(req.Options, models.CreateOptionRequest{Content: o})
	}
	p, err := f.social.CreatePoll(context.Background(), author, req)
	require.NoError(t, err)
	return p
}

func requireKind(t *testing.T, want services.Kind, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, services.KindOf(err), "error: %v", err)
}
