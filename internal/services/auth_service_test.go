package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func register(t *testing.T, f *fixture, name, email, password string) *models.User {
	t.Helper()
	u, err := f.auth.Register(context.Background(), models.RegisterRequest{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	f := newFixture(t)
	u := register(t, f, "Ana", "ana@example.com", "s3cret")

	require.NotZero(t, u.ID)
	assert.NotEqual(t, "s3cret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t)
	register(t, f, "Ana", "ana@example.com", "s3cret")

	_, err := f.auth.Register(context.Background(), models.RegisterRequest{Name: "Other", Email: "ana@example.com", Password: "x"})
	requireKind(t, services.KindConflict, err)
	assert.Equal(t, "Email já cadastrado", err.(*services.Error).Message)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	register(t, f, "Ana", "ana@example.com", "s3cret")
	ctx := context.Background()

	_, unknown := f.auth.Login(ctx, "nobody@example.com", "s3cret")
	_, wrong := f.auth.Login(ctx, "ana@example.com", "bad")

	requireKind(t, services.KindUnauthorized, unknown)
	requireKind(t, services.KindUnauthorized, wrong)
	assert.Equal(t, unknown.Error(), wrong.Error())
}

func TestLogin_IssuesVerifiableTokens(t *testing.T) {
	f := newFixture(t)
	u := register(t, f, "Ana", "ana@example.com", "s3cret")

	pair, err := f.auth.Login(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)

	for _, tok := range []string{pair.AccessToken, pair.RefreshToken} {
		id, err := f.tokens.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, u.ID, id)
	}
}

func TestLoginForm_ReturnsAccessToken(t *testing.T) {
	f := newFixture(t)
	u := register(t, f, "Ana", "ana@example.com", "s3cret")

	access, err := f.auth.LoginForm(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)
	id, err := f.tokens.Verify(access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = f.auth.LoginForm(context.Background(), "ana@example.com", "nope")
	requireKind(t, services.KindUnauthorized, err)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	u := register(t, f, "Ana", "ana@example.com", "s3cret")
	ctx := context.Background()

	pair, err := f.auth.Login(ctx, "ana@example.com", "s3cret")
	require.NoError(t, err)

	got, err := f.auth.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	t.Run("expired access token", func(t *testing.T) {
		saved := f.now
		defer func() { f.now = saved }()
		f.now = f.now.Add(30 * time.Minute)

		_, err := f.auth.Authenticate(ctx, pair.AccessToken)
		requireKind(t, services.KindUnauthorized, err)

		// The refresh token outlives the access token and still authenticates.
		_, err = f.auth.Authenticate(ctx, pair.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := f.auth.Authenticate(ctx, "not-a-token")
		requireKind(t, services.KindUnauthorized, err)
	})

	t.Run("user deleted after issue", func(t *testing.T) {
		require.NoError(t, f.db.Delete(&models.User{}, u.ID).Error)
		_, err := f.auth.Authenticate(ctx, pair.AccessToken)
		requireKind(t, services.KindUnauthorized, err)
	})
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	f := newFixture(t)
	u := register(t, f, "Ana", "ana@example.com", "s3cret")

	access, err := f.auth.Refresh(u)
	require.NoError(t, err)
	id, err := f.tokens.Verify(access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestRegister_PasswordOverBcryptLimit(t *testing.T) {
	f := newFixture(t)

	// 40 runes but 80 bytes: short by rune count, too long for bcrypt.
	long := strings.Repeat("ã", 40)
	_, err := f.auth.Register(context.Background(), models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: long})
	requireKind(t, services.KindValidation, err)

	exists, err := f.auth.Login(context.Background(), "ana@example.com", long)
	assert.Nil(t, exists)
	requireKind(t, services.KindUnauthorized, err)
}
