// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	backend := strings.TrimSpace(os.Getenv("BACKEND_URL"))
	frontend := strings.TrimSpace(os.Getenv("FRONTEND_URL"))
	port := strings.TrimSpace(os.Getenv("PORT"))
	slack := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL"))

	if secret == "" {
		fail("JWT_SECRET is empty (session tokens would be signed with the dev fallback).")
	}
	if len(secret) < 32 {
		warn("JWT_SECRET is short; use at least 32 random bytes.")
	} else {
		ok("JWT_SECRET present")
	}

	if backend == "" {
		warn("BACKEND_URL empty — pinger will fall back to the hardcoded hosted URL.")
	} else if _, err := url.ParseRequestURI(backend); err != nil {
		fail("BACKEND_URL is not a valid URL: " + backend)
	} else {
		ok("BACKEND_URL=" + backend)
	}

	if frontend == "" {
		warn("FRONTEND_URL empty — CORS will allow all origins (dev only).")
	} else {
		ok("FRONTEND_URL=" + frontend)
	}

	if port == "" {
		warn("PORT empty; the API will default to 10000.")
	} else {
		ok("PORT=" + port)
	}

	if slack == "" {
		warn("SLACK_WEBHOOK_URL empty — downtime alerts are disabled.")
	} else {
		ok("SLACK_WEBHOOK_URL present")
	}

	ok("preflight passed")
}
