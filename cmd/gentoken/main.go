package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/infrastructure/auth"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/google/uuid"
)

// gentoken issues an access token for local API testing. The server never
// issues tokens itself, so this tool is the way to get one during development.
func main() {
	var (
		userID   string
		username string
		role     string
	)

	flag.StringVar(&userID, "user-id", "", "User UUID (default: random)")
	flag.StringVar(&username, "username", "dev", "Username embedded in the token")
	flag.StringVar(&role, "role", "admin", "Role: admin, alcafer, or gabifer")
	flag.Parse()

	if !identity.Role(role).IsValid() {
		fmt.Fprintf(os.Stderr, "invalid role %q: must be admin, alcafer, or gabifer\n", role)
		os.Exit(1)
	}

	id := uuid.New()
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid user ID: %v\n", err)
			os.Exit(1)
		}
		id = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	token, err := jwtService.Generate(id, username, identity.Role(role))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("user_id:    %s\n", id)
	fmt.Printf("role:       %s\n", role)
	fmt.Printf("expires_at: %s\n", token.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("\n%s\n", token.AccessToken)
}
