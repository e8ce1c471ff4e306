package app

import (
	"context"
	"fmt"

	"blogger/config"
	v1 "blogger/internal/handlers/http/v1"
	"blogger/internal/httpserver"
	"blogger/internal/repository/postgres"
	"blogger/internal/service"
	"blogger/internal/token"
)

// Run wires the process in a strict order: database connect and migrate,
// then the revocation store, then the services, and only then the
// listener. Nothing is served until the schema is in place.
func Run(conf config.Config) error {
	ctx := context.Background()

	repo, err := postgres.New(conf.Postgres)
	if err != nil {
		return fmt.Errorf("error when setting up repository: %v", err)
	}

	revoker, err := token.NewRedisRevoker(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("error when setting up revocation store: %v", err)
	}

	tokens, err := token.NewManager(conf.Auth.JWTSecret, conf.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("error when setting up token manager: %v", err)
	}

	auth := service.NewAuth(repo, tokens, revoker, conf.Auth.BcryptCost)
	content := service.NewContent(repo, repo)

	handler, err := v1.New(auth, content)
	if err != nil {
		return fmt.Errorf("error when setting up handler: %v", err)
	}

	httpserver := httpserver.New(conf.HTTPServer, handler)

	return httpserver.Run(ctx)
}
