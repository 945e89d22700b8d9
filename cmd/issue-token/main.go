// Package main issues access tokens for local development against the API.
// Production tokens come from the identity provider sharing JWT_SECRET.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/finance-pal/backend/config"
	"github.com/finance-pal/backend/internal/integration/adapters"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	userFlag := flag.String("user", "", "user ID (UUID); a random one is generated when empty")
	email := flag.String("email", "dev@example.com", "email claim")
	ttl := flag.Duration("ttl", cfg.JWT.AccessTokenExpiry, "token lifetime")
	flag.Parse()

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			slog.Error("Invalid user ID", "user", *userFlag, "error", err)
			os.Exit(2)
		}
		userID = parsed
	}

	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	token, err := tokenService.IssueAccessToken(context.Background(), userID, *email, *ttl)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		os.Exit(1)
	}

	slog.Info("Issued access token", "user_id", userID, "expires_in", ttl.String())
	fmt.Println(token)
}
