// Package apitest runs an in-process fake of the yoga studio REST API for
// tests. Routes mirror the real API surface; responses are scripted per
// method and path with Intercept or HandleFunc, and every request is
// recorded so tests can assert on exactly what was sent.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Request is a recorded incoming request.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Server is a scripted fake backend. Its embedded httptest.Server is
// closed by the test cleanup registered in NewServer.
type Server struct {
	*httptest.Server

	secret []byte

	mu          sync.Mutex
	handlers    map[string]gin.HandlerFunc
	requests    []Request
	requireAuth bool
}

// NewServer starts a fake backend with no scripted responses: every
// known route answers 404 until intercepted.
func NewServer(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		secret:   []byte("apitest-secret"),
		handlers: make(map[string]gin.HandlerFunc),
	}

	r := gin.New()
	r.Use(s.record, s.authenticate)

	api := r.Group("/api")
	api.POST("/auth/login", s.dispatch)
	api.POST("/auth/register", s.dispatch)

	api.GET("/teacher", s.dispatch)
	api.GET("/teacher/:id", s.dispatch)

	api.GET("/user/:id", s.dispatch)
	api.DELETE("/user/:id", s.dispatch)

	api.GET("/session", s.dispatch)
	api.POST("/session", s.dispatch)
	api.GET("/session/:id", s.dispatch)
	api.PUT("/session/:id", s.dispatch)
	api.DELETE("/session/:id", s.dispatch)
	api.POST("/session/:id/participate/:userID", s.dispatch)
	api.DELETE("/session/:id/participate/:userID", s.dispatch)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Intercept scripts the response to method on path. A nil body sends the
// status with an empty body; anything else is sent as JSON.
func (s *Server) Intercept(method, path string, status int, body any) {
	s.HandleFunc(method, path, func(c *gin.Context) {
		if body == nil {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	})
}

// HandleFunc scripts method on path with a custom gin handler.
func (s *Server) HandleFunc(method, path string, h gin.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method+" "+path] = h
}

// RequireAuth makes every route outside /api/auth answer 401 unless the
// request carries a bearer token issued by IssueToken.
func (s *Server) RequireAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requireAuth = true
}

// IssueToken signs an HS256 token for subject valid for ttl.
func (s *Server) IssueToken(t testing.TB, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString(s.secret)
	require.NoError(t, err)
	return token
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// ExpectOne asserts that exactly one request matched method and path and
// returns it.
func (s *Server) ExpectOne(t testing.TB, method, path string) Request {
	t.Helper()
	matches := s.matching(method, path)
	require.Lenf(t, matches, 1, "expected one %s %s, got %d (all: %v)", method, path, len(matches), s.summary())
	return matches[0]
}

// ExpectNone asserts that no request matched method and path.
func (s *Server) ExpectNone(t testing.TB, method, path string) {
	t.Helper()
	require.Emptyf(t, s.matching(method, path), "unexpected %s %s", method, path)
}

func (s *Server) matching(method, path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) summary() []string {
	var out []string
	for _, r := range s.Requests() {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	s.mu.Unlock()

	c.Next()
}

func (s *Server) authenticate(c *gin.Context) {
	s.mu.Lock()
	required := s.requireAuth
	s.mu.Unlock()

	if !required || strings.HasPrefix(c.Request.URL.Path, "/api/auth/") {
		c.Next()
		return
	}

	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || !s.validToken(token) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.Next()
}

func (s *Server) validToken(token string) bool {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	return err == nil && parsed.Valid
}

func (s *Server) dispatch(c *gin.Context) {
	s.mu.Lock()
	h, ok := s.handlers[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	h(c)
}
