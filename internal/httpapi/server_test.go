package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/auth"
)

// ---- test helpers ----

func setupServer(t *testing.T, opts RouterOptions) *httptest.Server {
	t.Helper()
	log := zap.NewNop()
	svc := auth.NewService(log, auth.NewJWTIssuer("test-secret-0123456789abcdef", 0))
	srv := NewServer(log, svc)
	ts := httptest.NewServer(srv.Router(opts))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, out
}

// ---- tests ----

func TestPing_AlwaysAliveWithUptime(t *testing.T) {
	ts := setupServer(t, RouterOptions{})

	resp, err := http.Get(ts.URL + "/api/ping")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success   bool    `json:"success"`
		Message   string  `json:"message"`
		Timestamp string  `json:"timestamp"`
		Uptime    float64 `json:"uptime"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Pong! Service is alive" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Uptime < 0 {
		t.Fatalf("uptime must be non-negative, got %f", body.Uptime)
	}
	if body.Timestamp == "" {
		t.Fatalf("want timestamp set")
	}
}

func TestAuthTest_OK(t *testing.T) {
	ts := setupServer(t, RouterOptions{})

	resp, err := http.Get(ts.URL + "/api/auth/test")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}

func TestRegister_OK_DefaultRole_DistinctTokens(t *testing.T) {
	ts := setupServer(t, RouterOptions{})
	payload := `{"username":"alice","email":"a@b.com","password":"pw123456","displayName":"Alice"}`

	resp, out := postJSON(t, ts.URL+"/api/auth/register", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	if out["success"] != true {
		t.Fatalf("want success=true, got %v", out["success"])
	}
	user, _ := out["user"].(map[string]any)
	if user == nil || user["role"] != "subscriber" {
		t.Fatalf("want default role subscriber, got %v", out["user"])
	}
	token1, _ := out["token"].(string)
	if token1 == "" {
		t.Fatalf("want non-empty token")
	}

	// same payload again: accepted, different token (no idempotency)
	resp2, out2 := postJSON(t, ts.URL+"/api/auth/register", payload)
	if resp2.StatusCode != http.StatusCreated {
		t.Fatalf("want 201 on repeat, got %d", resp2.StatusCode)
	}
	if token2, _ := out2["token"].(string); token2 == token1 {
		t.Fatalf("tokens must differ across calls")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	ts := setupServer(t, RouterOptions{})

	resp, out := postJSON(t, ts.URL+"/api/auth/register", `{"username":"bob","email":"b@b.com"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	if out["success"] != false || out["message"] != "Missing required fields" {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	ts := setupServer(t, RouterOptions{})
	payload := `{"username":"mallory","email":"m@b.com","password":"pw123456","displayName":"Mallory","role":"admin"}`

	resp, out := postJSON(t, ts.URL+"/api/auth/register", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	if out["message"] != "Invalid role" {
		t.Fatalf("unexpected body: %v", out)
	}
}

func TestRegister_MalformedBodyIsInternalError(t *testing.T) {
	ts := setupServer(t, RouterOptions{})

	resp, out := postJSON(t, ts.URL+"/api/auth/register", `{"username":`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
	if out["message"] != "Registration failed" {
		t.Fatalf("unexpected body: %v", out)
	}
	if out["error"] == "" || out["error"] == nil {
		t.Fatalf("want error detail in body")
	}
}

func TestRegister_RateLimited(t *testing.T) {
	ts := setupServer(t, RouterOptions{AuthRPM: 60, AuthBurst: 2})
	payload := `{"username":"alice","email":"a@b.com","password":"pw123456","displayName":"Alice"}`

	for i := 0; i < 2; i++ {
		resp, _ := postJSON(t, ts.URL+"/api/auth/register", payload)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("want 201 within burst, got %d", resp.StatusCode)
		}
	}
	resp, _ := postJSON(t, ts.URL+"/api/auth/register", payload)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("want 429 past burst, got %d", resp.StatusCode)
	}
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	ts := setupServer(t, RouterOptions{FrontendURL: "https://app.example.com"})

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("want origin allowed, got %q", got)
	}
}
