// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package client manages the customer records behind the client portal.

Each client owns a unique username slug that doubles as their portal URL
(/cliente/{username}). Usernames are derived from the client name at creation
time unless the admin picks one explicitly; collisions are rejected, never
auto-suffixed, so a portal link handed to a customer can never silently
change meaning.
*/
package client

import "time"

// # Entity

// Client is a customer with a portal page.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// # Inputs

// CreateInput is the admin payload for registering a client.
//
// Username is optional; when empty it is derived from Name.
type CreateInput struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Username string  `json:"username"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Username *string `json:"username"`
}

// Field names used in validation errors.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldUsername = "username"
)
