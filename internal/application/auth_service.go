package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/inkwell-auth/internal/domain/entity"
	"github.com/inkwell/inkwell-auth/internal/domain/repository"
	"github.com/inkwell/inkwell-auth/pkg/googleauth"
	"github.com/inkwell/inkwell-auth/pkg/helpers"
	"github.com/inkwell/inkwell-auth/pkg/response"
	"github.com/inkwell/inkwell-auth/pkg/validation"
)

var (
	ErrEmailNotFound     = errors.New("email not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
	// ErrGoogleAccount rejects password signin against a federation-only
	// account before any hash comparison is attempted.
	ErrGoogleAccount = errors.New("account uses google auth")
	// ErrPasswordAccount rejects federated signin for an account that was
	// registered with a password.
	ErrPasswordAccount = errors.New("account uses password auth")
	ErrEmailExists     = errors.New("email already exists")
	ErrProviderAuth    = errors.New("provider authentication failed")
	ErrHashCompare     = errors.New("hash comparison failed")
)

// Service implements the three auth operations. Each call is a single
// stateless request/response transaction against the user store; the
// service itself holds no mutable state.
type Service struct {
	Repo     repository.UserRepository
	JWT      *helpers.JWTManager
	Verifier googleauth.Verifier
	Logger   *logrus.Logger
}

func NewService(repo repository.UserRepository, jwt *helpers.JWTManager, verifier googleauth.Verifier, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, JWT: jwt, Verifier: verifier, Logger: logger}
}

// generateUsername derives a username from the email local-part and
// appends a random suffix when the base name is taken. The existence
// check and the later insert are independent, so two concurrent signups
// for the same base can still collide on the unique index; that failure
// surfaces from Create and is not retried here.
func (s *Service) generateUsername(ctx context.Context, email string) (string, error) {
	username := helpers.UsernameFromEmail(email)
	exists, err := s.Repo.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if exists {
		suffix, err := helpers.RandomSuffix(helpers.UsernameSuffixLen)
		if err != nil {
			return "", err
		}
		username += suffix
	}
	return username, nil
}

func (s *Service) payload(u *entity.User) (*response.AuthPayload, error) {
	token, err := s.JWT.GenerateAccessToken(u.ID.Hex())
	if err != nil {
		return nil, err
	}
	p := response.NewAuthPayload(token, u)
	return &p, nil
}

// SignUp validates input, hashes the password and persists a new user.
func (s *Service) SignUp(ctx context.Context, fullname, email, password string) (*response.AuthPayload, error) {
	if err := validation.Signup(fullname, email, password); err != nil {
		return nil, err
	}

	username, err := s.generateUsername(ctx, email)
	if err != nil {
		return nil, err
	}
	hashed, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := entity.NewUser(fullname, email, hashed, username)
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"username": username}).Info("user signed up")
	return s.payload(u)
}

// SignIn authenticates an email/password pair against a stored hash.
func (s *Service) SignIn(ctx context.Context, email, password string) (*response.AuthPayload, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}

	if u.GoogleAuth {
		return nil, ErrGoogleAccount
	}

	if err := helpers.ComparePassword(u.PersonalInfo.Password, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrPasswordIncorrect
		}
		helpers.LogError(s.Logger, "password comparison failed", err, logrus.Fields{"email": email})
		return nil, ErrHashCompare
	}

	return s.payload(u)
}

// GoogleAuth verifies a Google ID token and signs the user in, creating
// the account on first contact.
func (s *Service) GoogleAuth(ctx context.Context, identityToken string) (*response.AuthPayload, error) {
	claims, err := s.Verifier.Verify(ctx, identityToken)
	if err != nil {
		helpers.LogError(s.Logger, "google token verification failed", err, nil)
		return nil, ErrProviderAuth
	}

	// Google hands out a 96px avatar by default; request the 384px variant.
	picture := strings.Replace(claims.Picture, "s96-c", "s384-c", 1)

	u, err := s.Repo.GetAuthProfileByEmail(ctx, claims.Email)
	switch {
	case err == nil:
		if !u.GoogleAuth {
			return nil, ErrPasswordAccount
		}
	case errors.Is(err, repository.ErrNotFound):
		username, uerr := s.generateUsername(ctx, claims.Email)
		if uerr != nil {
			return nil, uerr
		}
		u = entity.NewGoogleUser(claims.Name, claims.Email, username, picture)
		if cerr := s.Repo.Create(ctx, u); cerr != nil {
			if errors.Is(cerr, repository.ErrDuplicateKey) {
				return nil, ErrEmailExists
			}
			return nil, cerr
		}
		s.Logger.WithFields(logrus.Fields{"username": username}).Info("google user created")
	default:
		return nil, err
	}

	return s.payload(u)
}
