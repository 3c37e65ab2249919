// Command admintoken mints a bearer token for the admin endpoints from the
// service's JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"donations/internal/middleware"
)

func main() {
	var (
		subjectFlag string
		ttlFlag     time.Duration
	)
	flag.StringVar(&subjectFlag, "subject", "admin", "Subject to embed in the token")
	flag.DurationVar(&ttlFlag, "ttl", 24*time.Hour, "How long the token stays valid")
	flag.Parse()

	_ = godotenv.Load()

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	token, err := middleware.SignJWT(secret, middleware.TokenClaims{
		Sub:    subjectFlag,
		Exp:    time.Now().Add(ttlFlag).Unix(),
		Issuer: "donations-admintoken",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
