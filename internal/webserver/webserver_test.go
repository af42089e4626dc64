package webserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver"
	"github.com/yaksok/yaksok/internal/webserver/infrastructure"
	"gorm.io/gorm"
)

func TestProtectedRoutesRequireAuthentication(t *testing.T) {
	var cases = []struct {
		name   string
		method string
		url    string
	}{
		{"Pending invitations", http.MethodGet, "/invitations"},
		{"Schedules in progress", http.MethodGet, "/invitations/in-progress"},
		{"Schedule creation", http.MethodPost, "/schedules"},
		{"Schedule detail", http.MethodGet, "/schedules/2b2c0f5a-fd00-4b22-9547-bb1e0bf9d524"},
		{"Availability submission", http.MethodPost, "/schedules/2b2c0f5a-fd00-4b22-9547-bb1e0bf9d524/responses"},
		{"Vote", http.MethodPost, "/schedules/2b2c0f5a-fd00-4b22-9547-bb1e0bf9d524/votes"},
		{"Place vote", http.MethodPost, "/schedules/2b2c0f5a-fd00-4b22-9547-bb1e0bf9d524/place-votes"},
	}

	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, err := http.NewRequest(tcase.method, tcase.url, nil)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			response, err := app.Test(req)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != http.StatusUnauthorized {
				t.Errorf("Expected status %d, received %d", http.StatusUnauthorized, response.StatusCode)
			}
		})
	}
}

func TestAuthentication(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	t.Run("Register a new user", func(t *testing.T) {
		response, err := registerUser(app, "Miyeon", "miyeon", "miyeon@example.com", "secret123")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusCreated {
			t.Errorf("Expected status %d, received %d", http.StatusCreated, response.StatusCode)
		}
	})

	t.Run("Registering the same username again returns an error", func(t *testing.T) {
		response, err := registerUser(app, "Miyeon", "miyeon", "other@example.com", "secret123")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status %d, received %d", http.StatusBadRequest, response.StatusCode)
		}
	})

	t.Run("Try to log in with bad credentials", func(t *testing.T) {
		data := url.Values{
			"username": {"miyeon"},
			"password": {"wrong"},
		}
		req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(data.Encode()))
		req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected status %d, received %d", http.StatusUnauthorized, response.StatusCode)
		}
	})

	t.Run("Log in with good credentials and reach a protected route", func(t *testing.T) {
		cookie, err := login(app, "miyeon", "secret123")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(app, cookie, "/invitations")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusOK {
			t.Errorf("Expected status %d, received %d", http.StatusOK, response.StatusCode)
		}
	})
}

func bootstrapApp(db *gorm.DB, sender webserver.Sender) *fiber.App {
	webserverConfig := webserver.Config{
		JwtSecret:         []byte("jwtsecret"),
		MinPasswordLength: 5,
		SessionTimeout:    time.Hour,
	}

	return webserver.New(webserverConfig, db, sender)
}

func registerUser(app *fiber.App, name, username, email, password string) (*http.Response, error) {
	data := url.Values{
		"name":             {name},
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm-password": {password},
	}

	req, err := http.NewRequest(http.MethodPost, "/register", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	return app.Test(req)
}

func login(app *fiber.App, username, password string) (*http.Cookie, error) {
	data := url.Values{
		"username": {username},
		"password": {password},
	}

	req, err := http.NewRequest(http.MethodPost, "/login", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(req)
	if err != nil {
		return nil, err
	}

	if len(response.Cookies()) == 0 {
		return nil, fmt.Errorf("Cookie not set up")
	}
	return response.Cookies()[0], nil
}

// signUp registers a user and returns their session cookie.
func signUp(t *testing.T, app *fiber.App, username string) *http.Cookie {
	t.Helper()

	response, err := registerUser(app, username, username, username+"@example.com", "secret123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("Couldn't register %s, received status %d", username, response.StatusCode)
	}

	cookie, err := login(app, username, "secret123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return cookie
}

func getRequest(app *fiber.App, cookie *http.Cookie, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func postJSON(app *fiber.App, cookie *http.Cookie, url string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func postForm(app *fiber.App, cookie *http.Cookie, address string, data url.Values) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, address, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func decodeBody(t *testing.T, response *http.Response) map[string]interface{} {
	t.Helper()

	body := map[string]interface{}{}
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatalf("Couldn't decode response body: %v", err)
	}
	return body
}
