package response

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell/inkwell-auth/internal/domain/entity"
)

// AuthPayload is the token-bearing profile returned by every successful
// auth operation. The shape is a fixed client contract; the frontend
// shell stores the whole object in session storage under the key "user".
type AuthPayload struct {
	AccessToken string `json:"access_token"`
	ProfileImg  string `json:"profile_img"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
}

// NewAuthPayload shapes the safe-to-expose profile subset around a
// freshly signed access token.
func NewAuthPayload(accessToken string, u *entity.User) AuthPayload {
	return AuthPayload{
		AccessToken: accessToken,
		ProfileImg:  u.PersonalInfo.ProfileImg,
		Username:    u.PersonalInfo.Username,
		Fullname:    u.PersonalInfo.Fullname,
	}
}

// Err writes the error body used by every failing auth response.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
