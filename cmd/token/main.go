// Command token issues an access token for a reader. It is the operator's
// way to hand out credentials; the API has no sign-up flow.
//
// Usage:
//
//	token --user=<uuid> [--label=laptop]
//	token --new
//
// Reads the same configuration as the server (AUTH_JWT_SECRET etc.).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/auth"
	"github.com/heartmarshall/clicktionary-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "reader ID (UUID) to issue the token for")
	newUser := flag.Bool("new", false, "generate a fresh reader ID")
	label := flag.String("label", "", "free-form label stored in the token")
	flag.Parse()

	if (*user == "") == !*newUser {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid> | --new [--label=name]")
		os.Exit(1)
	}

	userID := uuid.New()
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			log.Fatalf("invalid --user: %v", err)
		}
		userID = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, expiresAt, err := manager.Issue(userID, *label)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Printf("user:    %s\n", userID)
	fmt.Printf("expires: %s\n", expiresAt.Format(time.RFC3339))
	fmt.Printf("token:   %s\n", token)
}
