package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkwell/inkwell-auth/internal/application"
	"github.com/inkwell/inkwell-auth/pkg/response"
	"github.com/inkwell/inkwell-auth/pkg/validation"
)

// AuthHandler exposes the signup, signin and google-auth endpoints.
type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleAuthRequest struct {
	AccessToken string `json:"access_token"`
}

func isValidationError(err error) bool {
	return errors.Is(err, validation.ErrFullnameTooShort) ||
		errors.Is(err, validation.ErrEmailMissing) ||
		errors.Is(err, validation.ErrEmailInvalid) ||
		errors.Is(err, validation.ErrPasswordPolicy)
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusForbidden, "Invalid request body")
		return
	}

	payload, err := h.Svc.SignUp(c.Request.Context(), req.Fullname, req.Email, req.Password)
	if err != nil {
		switch {
		case isValidationError(err):
			response.Err(c, http.StatusForbidden, err.Error())
		case errors.Is(err, application.ErrEmailExists):
			// 500 rather than a 4xx is a long-standing quirk the clients
			// already rely on.
			response.Err(c, http.StatusInternalServerError, "Email already exists")
		default:
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("signup failed")
			response.Err(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, payload)
}

// Signin handles POST /signin.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusForbidden, "Invalid request body")
		return
	}

	payload, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailNotFound):
			response.Err(c, http.StatusForbidden, "Email is not found")
		case errors.Is(err, application.ErrGoogleAccount):
			response.Err(c, http.StatusForbidden, "Account was created using Google. Try logging in with Google")
		case errors.Is(err, application.ErrPasswordIncorrect):
			response.Err(c, http.StatusForbidden, "Password is incorrect")
		case errors.Is(err, application.ErrHashCompare):
			response.Err(c, http.StatusForbidden, "Error occurred while logging in, please try again")
		default:
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("signin failed")
			response.Err(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GoogleAuth handles POST /google-auth.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusForbidden, "Invalid request body")
		return
	}

	payload, err := h.Svc.GoogleAuth(c.Request.Context(), req.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPasswordAccount):
			response.Err(c, http.StatusForbidden, "This email was signed up without Google. Please log in with a password to access the account")
		case errors.Is(err, application.ErrProviderAuth):
			response.Err(c, http.StatusInternalServerError, "Failed to authenticate with Google. Try another Google account")
		case errors.Is(err, application.ErrEmailExists):
			response.Err(c, http.StatusInternalServerError, "Email already exists")
		default:
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("google auth failed")
			response.Err(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, payload)
}
