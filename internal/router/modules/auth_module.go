package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/inkwell/inkwell-auth/internal/interface/http"
)

// Module wires the auth HTTP handlers into routes.
// Public: POST /signup, POST /signin, POST /google-auth
type Module struct {
	Handler *handlers.AuthHandler
}

func New(h *handlers.AuthHandler) *Module {
	return &Module{Handler: h}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/signin", m.Handler.Signin)
	rg.POST("/google-auth", m.Handler.GoogleAuth)
}
