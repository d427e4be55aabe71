package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/domain"
)

// Interactive registration wizard: prompts for account details and posts
// them to the running API.
func main() {
	_ = godotenv.Load()

	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:10000"
	}

	reader := bufio.NewReader(os.Stdin)
	ask := func(label string) string {
		fmt.Print(label)
		raw, _ := reader.ReadString('\n')
		return strings.TrimSpace(raw)
	}

	payload := map[string]string{
		"username":    ask("Username: "),
		"email":       ask("Email: "),
		"password":    ask("Password: "),
		"displayName": ask("Display name: "),
	}
	if role := ask("Role [subscriber/creator] (default subscriber): "); role != "" {
		if !domain.Role(role).Valid() {
			fmt.Println("Unknown role:", role)
			os.Exit(1)
		}
		payload["role"] = role
	}

	body, _ := json.Marshal(payload)
	resp, err := http.Post(api+"/api/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Error contacting API:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Println("API returned status:", resp.Status)
		os.Exit(1)
	}

	if !out.Success {
		fmt.Printf("Registration failed (%s): %s\n", resp.Status, out.Message)
		os.Exit(1)
	}
	fmt.Printf("Registered! user id=%s role=%s\n", out.User.ID, out.User.Role)
	fmt.Println("Session token:", out.Token)
}
