package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

// HTTPClient talks JSON over HTTP to the StudyTrack server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:5000". The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// errorResponse is the uniform error envelope the server sends.
type errorResponse struct {
	Error string `json:"error"`
}

// do performs one JSON request. A non-nil token is sent in the auth header.
// When out is non-nil the response body is decoded into it.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport-level failures (refused connection, DNS, timeout) all
		// surface as ErrUnavailable so callers can match with errors.Is.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// decodeError maps an HTTP error response onto the package sentinels,
// carrying the server's message along.
func (c *HTTPClient) decodeError(resp *http.Response) error {
	var er errorResponse
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
		msg = er.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, email string, password []byte) (string, error) {
	req := map[string]string{
		"username": username,
		"email":    email,
		"password": string(password),
	}
	var resp struct {
		Message string `json:"message"`
		UserID  string `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, User, error) {
	req := map[string]string{
		"email":    email,
		"password": string(password),
	}
	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return "", User{}, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) AddTopic(ctx context.Context, token, subject, topicName, importance string) (*Topic, error) {
	req := map[string]string{
		"subject":    subject,
		"topicName":  topicName,
		"importance": importance,
	}
	var topic Topic
	if err := c.do(ctx, http.MethodPost, "/api/syllabus/add", token, req, &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (c *HTTPClient) ListTopics(ctx context.Context, token string) ([]Topic, error) {
	var topics []Topic
	if err := c.do(ctx, http.MethodGet, "/api/syllabus/all", token, nil, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *HTTPClient) UpdateTopicStatus(ctx context.Context, token, id, status string) (*Topic, error) {
	req := map[string]string{"status": status}
	var topic Topic
	if err := c.do(ctx, http.MethodPut, "/api/syllabus/"+id, token, req, &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (c *HTTPClient) DeleteTopic(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/syllabus/"+id, token, nil, nil)
}

// Ping checks server liveness via the root endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}
