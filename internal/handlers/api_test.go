package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

const apiBase = "http://localhost:8080"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user"`
	Tasks   json.RawMessage `json:"tasks"`
}

func postJSON(t *testing.T, path string, payload any) (*http.Response, envelope) {
	t.Helper()
	body, _ := json.Marshal(payload)
	resp, err := http.Post(apiBase+path, "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response from %s: %v", path, err)
	}
	return resp, env
}

// TestAPIEndpoints runs black-box tests against a running server. It
// skips when no server is listening.
func TestAPIEndpoints(t *testing.T) {
	resp, err := http.Get(apiBase + "/favicon.ico")
	if err != nil {
		t.Skipf("API server is not running at %s: %v", apiBase, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("favicon should return 204, got %d", resp.StatusCode)
	}

	username := fmt.Sprintf("ana-%d", time.Now().UnixNano())
	email := username + "@x.com"

	t.Run("Register", func(t *testing.T) {
		resp, env := postJSON(t, "/register", map[string]any{
			"username": username,
			"email":    email,
			"password": "p1",
			"role":     1, // must be ignored
		})
		if resp.StatusCode != http.StatusOK || !env.Success {
			t.Fatalf("register failed: %d %s", resp.StatusCode, env.Message)
		}
	})

	t.Run("Register duplicate username conflicts", func(t *testing.T) {
		resp, env := postJSON(t, "/register", map[string]any{
			"username": username,
			"email":    "otro-" + email,
			"password": "p1",
		})
		if resp.StatusCode != http.StatusBadRequest || env.Success {
			t.Fatalf("expected 400 conflict, got %d", resp.StatusCode)
		}
		if !strings.Contains(env.Message, "nombre de usuario") {
			t.Fatalf("conflict message should name the username field, got %q", env.Message)
		}
	})

	t.Run("Register duplicate email conflicts", func(t *testing.T) {
		resp, env := postJSON(t, "/register", map[string]any{
			"username": username + "-otro",
			"email":    email,
			"password": "p1",
		})
		if resp.StatusCode != http.StatusBadRequest || env.Success {
			t.Fatalf("expected 400 conflict, got %d %s", resp.StatusCode, env.Message)
		}
	})

	var userID string
	t.Run("Login returns stored record and forced member role", func(t *testing.T) {
		resp, env := postJSON(t, "/auth/login", map[string]string{
			"username": username,
			"password": "p1",
		})
		if resp.StatusCode != http.StatusOK || !env.Success {
			t.Fatalf("login failed: %d %s", resp.StatusCode, env.Message)
		}

		var user struct {
			ID   string `json:"id"`
			Role int    `json:"role"`
		}
		if err := json.Unmarshal(env.User, &user); err != nil {
			t.Fatalf("failed to decode user: %v", err)
		}
		if user.Role != 2 {
			t.Fatalf("registration must force member role, got %d", user.Role)
		}
		userID = user.ID
	})

	t.Run("Wrong password is not a not-found", func(t *testing.T) {
		resp, env := postJSON(t, "/auth/login", map[string]string{
			"username": username,
			"password": "wrong",
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for wrong password, got %d", resp.StatusCode)
		}
		if strings.Contains(env.Message, "no encontrado") {
			t.Fatalf("wrong password must not report not-found, got %q", env.Message)
		}
	})

	t.Run("Unknown user is a not-found", func(t *testing.T) {
		resp, _ := postJSON(t, "/auth/login", map[string]string{
			"username": username + "-nadie",
			"password": "p1",
		})
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown user, got %d", resp.StatusCode)
		}
	})

	t.Run("Invalid role value is rejected", func(t *testing.T) {
		if userID == "" {
			t.Skip("no user id from login")
		}
		body, _ := json.Marshal(map[string]int{"role": 3})
		req, _ := http.NewRequest(http.MethodPut, apiBase+"/users/"+userID+"/role", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("role update request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for role 3, got %d", resp.StatusCode)
		}
	})

	t.Run("Delete task twice still succeeds", func(t *testing.T) {
		if userID == "" {
			t.Skip("no user id from login")
		}
		resp, env := postJSON(t, "/tasks", map[string]any{
			"name":    "informe",
			"status":  "pendiente",
			"creator": userID,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("task creation failed: %d %s", resp.StatusCode, env.Message)
		}
		listing, err := http.Get(apiBase + "/admin/tasks")
		if err != nil {
			t.Fatalf("failed to list tasks: %v", err)
		}
		var all struct {
			Tasks []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"tasks"`
		}
		if err := json.NewDecoder(listing.Body).Decode(&all); err != nil {
			t.Fatalf("failed to decode task list: %v", err)
		}
		listing.Body.Close()

		var taskID string
		for _, task := range all.Tasks {
			if task.Name == "informe" {
				taskID = task.ID
			}
		}
		if taskID == "" {
			t.Fatal("created task not present in /admin/tasks")
		}

		for i := 0; i < 2; i++ {
			req, _ := http.NewRequest(http.MethodDelete, apiBase+"/tasks/"+taskID, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("delete request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("delete %d should succeed, got %d", i+1, resp.StatusCode)
			}
		}
	})

	t.Run("Logout acknowledges statelessly", func(t *testing.T) {
		resp, env := postJSON(t, "/auth/logout", map[string]string{})
		if resp.StatusCode != http.StatusOK || !env.Success {
			t.Fatalf("logout should always succeed, got %d", resp.StatusCode)
		}
	})
}
