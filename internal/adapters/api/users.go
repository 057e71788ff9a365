package api

import (
	"context"
	"net/url"

	"crudtask/internal/domain/user"
)

// ListUsersByEmail retrieves all users matching an exact email.
// PRE: email is non-empty
// POST: Returns zero or more matching records
func (c *Client) ListUsersByEmail(ctx context.Context, email string) ([]user.User, error) {
	var users []user.User
	err := c.get(ctx, "/users?email="+url.QueryEscape(email), &users)
	return users, err
}

// ListUsers retrieves all users.
func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := c.get(ctx, "/users", &users)
	return users, err
}

// CreateUser creates a user record.
// PRE: u has been validated and carries a hashed password
// POST: Returns the created record including its assigned id
func (c *Client) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	var created user.User
	err := c.post(ctx, "/users", u, &created)
	return created, err
}
