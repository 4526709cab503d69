package api

import (
	"context"
	"net/url"
	"strconv"
)

// SignUpRequest is the body of POST /users. The password repeat is checked
// locally and never sent.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the 200 body of POST /auth.
type LoginResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Image    *string `json:"image"`
	Token    string  `json:"token"`
}

// User is a directory entry or a profile.
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Image    *string `json:"image"`
}

// UserPage is one page of the user directory.
type UserPage struct {
	Content    []User `json:"content"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	TotalPages int    `json:"totalPages"`
}

func (c *Client) SignUp(ctx context.Context, body SignUpRequest) (*Response, error) {
	return c.post(ctx, "/users", body)
}

func (c *Client) Activate(ctx context.Context, token string) (*Response, error) {
	return c.post(ctx, "/users/token/"+url.PathEscape(token), nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*Response, error) {
	return c.post(ctx, "/auth", LoginRequest{Email: email, Password: password})
}

func (c *Client) ListUsers(ctx context.Context, page, size int) (*Response, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return c.get(ctx, "/users", q)
}

func (c *Client) GetUser(ctx context.Context, id string) (*Response, error) {
	return c.get(ctx, "/users/"+url.PathEscape(id), nil)
}
