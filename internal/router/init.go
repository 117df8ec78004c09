package router

import (
	"github.com/inkwell/inkwell-auth/internal/application"
	"github.com/inkwell/inkwell-auth/internal/container"
	"github.com/inkwell/inkwell-auth/internal/domain/repository"
	"github.com/inkwell/inkwell-auth/internal/infrastructure/mongodb"
	handlers "github.com/inkwell/inkwell-auth/internal/interface/http"
	authmodule "github.com/inkwell/inkwell-auth/internal/router/modules"
)

type AuthModuleDeps struct {
	Repo    repository.UserRepository
	Service *application.Service
	Handler *handlers.AuthHandler
}

func buildAuthDeps() AuthModuleDeps {
	repo := mongodb.NewUserRepository(container.GetDatabase())

	service := application.NewService(
		repo,
		container.GetJWT(),
		container.GetVerifier(),
		container.GetLogger(),
	)

	handler := handlers.NewAuthHandler(service, container.GetLogger())

	return AuthModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	authDeps := buildAuthDeps()
	r.Add(authmodule.New(authDeps.Handler))
}
