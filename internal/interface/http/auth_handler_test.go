package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell/inkwell-auth/internal/application"
	"github.com/inkwell/inkwell-auth/internal/domain/entity"
	"github.com/inkwell/inkwell-auth/internal/domain/repository"
	handlers "github.com/inkwell/inkwell-auth/internal/interface/http"
	"github.com/inkwell/inkwell-auth/internal/router"
	"github.com/inkwell/inkwell-auth/internal/router/modules"
	"github.com/inkwell/inkwell-auth/pkg/googleauth"
	"github.com/inkwell/inkwell-auth/pkg/helpers"
)

type memoryUserRepo struct {
	users []*entity.User
}

func (m *memoryUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, existing := range m.users {
		if existing.PersonalInfo.Email == u.PersonalInfo.Email ||
			existing.PersonalInfo.Username == u.PersonalInfo.Username {
			return repository.ErrDuplicateKey
		}
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.PersonalInfo.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserRepo) GetAuthProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := m.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	u.PersonalInfo.Password = ""
	u.PersonalInfo.Email = ""
	return u, nil
}

func (m *memoryUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.PersonalInfo.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeVerifier struct {
	claims *googleauth.Claims
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, identityToken string) (*googleauth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func newTestEngine(v googleauth.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &memoryUserRepo{}
	jwtManager := &helpers.JWTManager{Secret: []byte("test-secret")}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := application.NewService(repo, jwtManager, v, logger)
	handler := handlers.NewAuthHandler(svc, logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.New(handler))
	reg.RegisterAll()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, path string, body map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestSignup_EndToEnd(t *testing.T) {
	engine := newTestEngine(&fakeVerifier{})

	alice := map[string]string{
		"fullname": "Alice Example",
		"email":    "alice@example.com",
		"password": "Abc123!",
	}

	w, body := doJSON(t, engine, "/signup", alice)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(body["username"].(string), "alice"))
	require.Equal(t, "Alice Example", body["fullname"])
	require.NotEmpty(t, body["access_token"])
	require.NotEmpty(t, body["profile_img"])

	// Immediately repeating the same signup hits the unique email index.
	w, body = doJSON(t, engine, "/signup", alice)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Email already exists", body["error"])
}

func TestSignup_ValidationErrors(t *testing.T) {
	engine := newTestEngine(&fakeVerifier{})

	cases := []struct {
		name string
		body map[string]string
	}{
		{"short fullname", map[string]string{"fullname": "Al", "email": "a@b.co", "password": "Abc123!"}},
		{"missing email", map[string]string{"fullname": "Alice Example", "email": "", "password": "Abc123!"}},
		{"invalid email", map[string]string{"fullname": "Alice Example", "email": "nope", "password": "Abc123!"}},
		{"weak password", map[string]string{"fullname": "Alice Example", "email": "a@b.co", "password": "abcdef1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := doJSON(t, engine, "/signup", tc.body)
			require.Equal(t, http.StatusForbidden, w.Code)
			require.NotEmpty(t, body["error"])
		})
	}
}

func TestSignin_Flows(t *testing.T) {
	engine := newTestEngine(&fakeVerifier{})

	w, _ := doJSON(t, engine, "/signup", map[string]string{
		"fullname": "Alice Example", "email": "alice@example.com", "password": "Abc123!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, engine, "/signin", map[string]string{
		"email": "alice@example.com", "password": "Abc123!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", body["username"])

	w, body = doJSON(t, engine, "/signin", map[string]string{
		"email": "alice@example.com", "password": "Wrong1pw",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Password is incorrect", body["error"])

	w, body = doJSON(t, engine, "/signin", map[string]string{
		"email": "nobody@example.com", "password": "Abc123!",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Email is not found", body["error"])
}

func TestGoogleAuth_Flows(t *testing.T) {
	v := &fakeVerifier{claims: &googleauth.Claims{
		Email: "fed@example.com", Name: "Fed User", Picture: "https://lh3.example/photo=s96-c",
	}}
	engine := newTestEngine(v)

	w, body := doJSON(t, engine, "/google-auth", map[string]string{"access_token": "opaque"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Fed User", body["fullname"])
	require.Equal(t, "https://lh3.example/photo=s384-c", body["profile_img"])

	// A federated account cannot sign in with a password.
	w, body = doJSON(t, engine, "/signin", map[string]string{
		"email": "fed@example.com", "password": "Abc123!",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Account was created using Google. Try logging in with Google", body["error"])
}

func TestGoogleAuth_PasswordAccountConflict(t *testing.T) {
	v := &fakeVerifier{claims: &googleauth.Claims{
		Email: "alice@example.com", Name: "Alice Example",
	}}
	engine := newTestEngine(v)

	w, _ := doJSON(t, engine, "/signup", map[string]string{
		"fullname": "Alice Example", "email": "alice@example.com", "password": "Abc123!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, engine, "/google-auth", map[string]string{"access_token": "opaque"})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "This email was signed up without Google. Please log in with a password to access the account", body["error"])
}

func TestGoogleAuth_VerifierFailure(t *testing.T) {
	engine := newTestEngine(&fakeVerifier{err: errors.New("expired")})

	w, body := doJSON(t, engine, "/google-auth", map[string]string{"access_token": "bad"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Failed to authenticate with Google. Try another Google account", body["error"])
}
