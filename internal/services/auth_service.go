package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/anonto42/rede-social/backend/internal/repositories"
	"github.com/anonto42/rede-social/backend/internal/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	msgEmailTaken       = "Email já cadastrado"
	msgBadCredentials   = "Email não está cadastrado ou credenciais incorretas"
	msgAccessDenied     = "Acesso negado"
	msgAccessDeniedAuth = "Acesso negado, verifique a validade do token"
	msgPasswordTooLong  = "A senha deve ter no máximo 72 bytes"
)

// dummyHash is compared against when the email is unknown so both login failures cost the same.
var dummyHash = mustHash("placeholder-password")

func mustHash(password string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("services: hash placeholder password: %v", err))
	}
	return h
}

// TokenPair is what a successful login hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService covers registration, login and identity resolution from bearer tokens.
type AuthService struct {
	uow        *repositories.UnitOfWork
	tokens     *token.Service
	accessTTL  time.Duration
	refreshTTL time.Duration
	hashCost   int
	log        *logrus.Logger
}

func NewAuthService(uow *repositories.UnitOfWork, tokens *token.Service, accessTTL, refreshTTL time.Duration, log *logrus.Logger) *AuthService {
	return &AuthService{
		uow:        uow,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		hashCost:   bcrypt.DefaultCost,
		log:        log,
	}
}

// Register stores a new user with a bcrypt hash of the password.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	// bcrypt limits by bytes, the validator's max tag counts runes.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, newError(KindValidation, msgPasswordTooLong)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	err = s.uow.Do(ctx, func(st *repositories.Store) error {
		exists, err := st.Users.EmailExists(req.Email)
		if err != nil {
			return err
		}
		if exists {
			return Conflict(msgEmailTaken)
		}
		if err := st.Users.CreateUser(user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return Conflict(msgEmailTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Login checks the credentials and issues an access and a refresh token.
// Unknown email and wrong password fail with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	access, err := s.tokens.Issue(user.ID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Issue(user.ID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// LoginForm is Login for form-encoded clients; it only returns an access token.
func (s *AuthService) LoginForm(ctx context.Context, username, password string) (string, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID, s.accessTTL)
}

// Refresh mints a new access token for an already resolved user.
func (s *AuthService) Refresh(user *models.User) (string, error) {
	return s.tokens.Issue(user.ID, s.accessTTL)
}

// Authenticate resolves the user behind a bearer token. A token whose user
// no longer exists is rejected like an invalid one.
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (*models.User, error) {
	userID, err := s.tokens.Verify(bearer)
	if err != nil {
		return nil, Unauthorized(msgAccessDeniedAuth)
	}

	var user *models.User
	err = s.uow.Do(ctx, func(st *repositories.Store) error {
		u, err := st.Users.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Unauthorized(msgAccessDenied)
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user *models.User
	err := s.uow.Do(ctx, func(st *repositories.Store) error {
		u, err := st.Users.GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, Unauthorized(msgBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, Unauthorized(msgBadCredentials)
	}
	return user, nil
}
