// Command devtoken prints a signed bearer token for local testing of the API.
// It reads the same layered configuration as the server, so the token is
// accepted by a server started with the same APP_PROFILE.
//
//	APP_PROFILE=local go run ./cmd/devtoken -sub john-doe -email john@example.com
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/auth"
	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
	"github.com/jsamuelsen11/conference-booking/internal/platform/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("devtoken", flag.ContinueOnError)
	sub := fset.String("sub", "", "user id placed in the subject claim (required)")
	email := fset.String("email", "", "email claim")
	ttl := fset.Duration("ttl", 0, "token lifetime (defaults to auth.token_ttl)")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if *sub == "" {
		return errors.New("-sub is required")
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, lifetime).
		Issue(user.User{ID: *sub, Email: *email})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
