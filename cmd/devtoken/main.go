// Command devtoken prints a signed access token for local testing.
//
//	JWT_SECRET=dev go run ./cmd/devtoken -user alice
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"skinswap/internal/auth"
	"skinswap/internal/config"
	"skinswap/utils"
)

func main() {
	userID := flag.String("user", "", "user id to place in the token subject")
	username := flag.String("name", "", "display name claim (defaults to the user id)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -user is required")
		flag.Usage()
		os.Exit(2)
	}
	if *username == "" {
		*username = *userID
	}

	cfg, _, err := config.Load()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}

	token, err := auth.NewJWTService(cfg.JWTSecret).GenerateToken(*userID, *username, *ttl)
	if err != nil {
		utils.Fatal("failed to sign token", map[string]any{"error": err.Error()})
	}
	fmt.Println(token)
}
