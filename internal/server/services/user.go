// Package services contains server-side business logic. This file implements
// UserService, which handles registration with role assignment, login, and
// issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkravets/libshelf/internal/common"
	"github.com/dkravets/libshelf/internal/dbx"
	"github.com/dkravets/libshelf/internal/server/auth"
	"github.com/dkravets/libshelf/internal/server/config"
	"github.com/dkravets/libshelf/internal/server/models"
	"github.com/dkravets/libshelf/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterParams carries registration input. Role is optional; when set, the
// role is looked up or created and linked to the new user atomically with
// the user insert.
type RegisterParams struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      string
}

// dummyHash is a bcrypt hash compared against when the email is unknown, so
// login latency does not reveal whether an account exists.
var dummyHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// UserService provides authentication-related operations:
// - Register: create users (optionally linked to a role)
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - CurrentUser: resolve an authenticated user id to its record
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	bcryptCost                   int
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		bcryptCost:                   cfg.BcryptCost,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register validates the input, hashes the password, and creates the user
// together with the optional role association in one transaction. A
// duplicate email surfaces as common.ErrEmailAlreadyExists even when two
// registrations race: the users table constraint decides.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	params.Email = NormalizeEmail(params.Email)

	if err := validateRegistration(params); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:        params.Email,
		Username:     params.Username,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: string(hash),
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = created

		if params.Role == "" {
			return nil
		}
		roleRepo := s.repomanager.Roles(tx)
		role, err := roleRepo.GetOrCreate(ctx, params.Role)
		if err != nil {
			return err
		}
		return roleRepo.Assign(ctx, user.ID, role.ID)
	}); err != nil {
		if errors.Is(err, common.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a new TokenPair along with the user. Unknown email, wrong password
// and deactivated account all yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	email = NormalizeEmail(email)

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn a comparison anyway so the miss costs as much as a hit.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, common.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(ctx, user.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Unknown tokens yield common.ErrInvalidToken,
// expired ones common.ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// CurrentUser resolves an access-token user id to the stored user record.
// Missing or deactivated users yield common.ErrUnauthorized.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !user.IsActive {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

// --- helpers below ---

// NormalizeEmail fixes the case policy: emails are compared and stored in
// lower case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration enforces the input rules: all fields non-empty, a
// syntactically valid email, and the password policy (at least 8 characters
// with at least one letter and one digit).
func validateRegistration(params RegisterParams) error {
	if params.FirstName == "" || params.LastName == "" || params.Username == "" ||
		params.Email == "" || params.Password == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if addr, err := mail.ParseAddress(params.Email); err != nil || addr.Address != params.Email {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if !passwordMeetsPolicy(params.Password) {
		return common.ErrWeakPassword
	}
	return nil
}

func passwordMeetsPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
