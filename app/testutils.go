package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/mailservice"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	rabbitURI := common.TestRabbitMQ(t)
	rabbitmq, err := common.NewMessageBroker(rabbitURI)
	assert.NoError(t, err)

	err = common.SetupUserExchange(rabbitmq)
	assert.NoError(t, err)

	cfg := &Config{
		Port:        "4000",
		Environment: "test",
		Secret:      "test-secret",
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, rabbitmq, cfg.Secret),
		blogService: blogservice.NewBlogService(db, cache),
		mailService: mailservice.NewMailService(rabbitmq, "localhost", "user", "password", "sender@example.com", "admin@example.com", 1025, logger),
		broker:      rabbitmq,
	}

	return app, db
}

// readResponse drains the body; empty responses yield a nil payload.
func readResponse(t *testing.T, res *http.Response) (int, http.Header, []byte) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

func unmarshalBody(t *testing.T, body []byte, dst any) {
	err := json.Unmarshal(body, dst)
	if err != nil {
		t.Fatalf("could not unmarshal response body %q: %v", body, err)
	}
}

func (ts *testServer) post(t *testing.T, path string, data any, token *string) (int, http.Header, []byte) {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, []byte) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) put(t *testing.T, path string, data any, token *string) (int, http.Header, []byte) {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPut, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, []byte) {
	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

// registerAndLogin creates an account and returns a bearer token for it.
func (ts *testServer) registerAndLogin(t *testing.T, username, name, password string) string {
	status, _, _ := ts.post(t, "/api/users", map[string]any{
		"username": username,
		"name":     name,
		"password": password,
	}, nil)
	assert.Equal(t, http.StatusCreated, status)

	status, _, body := ts.post(t, "/api/login", map[string]any{
		"username": username,
		"password": password,
	}, nil)
	assert.Equal(t, http.StatusOK, status)

	var loginRes struct {
		Token string `json:"token"`
	}
	unmarshalBody(t, body, &loginRes)
	assert.NotEmpty(t, loginRes.Token)

	return loginRes.Token
}

func (ts *testServer) listBlogs(t *testing.T) []map[string]any {
	status, _, body := ts.get(t, "/api/blogs", nil)
	assert.Equal(t, http.StatusOK, status)

	var blogs []map[string]any
	unmarshalBody(t, body, &blogs)

	return blogs
}

func (ts *testServer) listUsers(t *testing.T) []map[string]any {
	status, _, body := ts.get(t, "/api/users", nil)
	assert.Equal(t, http.StatusOK, status)

	var users []map[string]any
	unmarshalBody(t, body, &users)

	return users
}
