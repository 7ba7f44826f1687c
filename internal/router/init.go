package router

import (
	userapp "github.com/oksasatya/hello-users-api/internal/application"
	"github.com/oksasatya/hello-users-api/internal/container"
	repouser "github.com/oksasatya/hello-users-api/internal/domain/repository"
	"github.com/oksasatya/hello-users-api/internal/infrastructure/sqlite"
	handlers "github.com/oksasatya/hello-users-api/internal/interface/http"
	"github.com/oksasatya/hello-users-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := sqlite.NewUserRepository(container.GetStore())
	service := userapp.NewService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
	r.Add(modules.NewGreetingModule(handlers.NewGreetingHandler()))
}
