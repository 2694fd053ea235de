// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package project manages production work items and their deliverables.

A project belongs to exactly one client and carries a status (pending,
in_progress, completed) that only an admin update changes. Download links
attached to a project are only exposed on the public portal once the project
is completed; the admin panel always sees them.
*/
package project

import "time"

// # Enumerations

// Type classifies the production format of a project.
type Type string

const (
	TypeNarrated Type = "narrated"
	TypeSung     Type = "sung"
	TypeMixed    Type = "mixed"
)

// Status is the production pipeline stage.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status. Any valid status can be set
// directly by an admin update; there is no forced ordering, so a quick job
// can go from pending straight to completed.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// # Entity

// Project is one production engagement for a client.
type Project struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"clientId"`
	Name          string         `json:"name"`
	Type          Type           `json:"type"`
	Duration      *string        `json:"duration,omitempty"`
	Quantity      *int           `json:"quantity,omitempty"`
	Status        Status         `json:"status"`
	DownloadLinks []DownloadLink `json:"downloadLinks"`
	DeliveryDate  *time.Time     `json:"deliveryDate,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// DownloadLink is one deliverable file attached to a project.
type DownloadLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Size  string `json:"size,omitempty"`
}

// PublicView returns the portal-safe copy of the project. Download links of
// unfinished work are withheld so customers never see half-baked files.
func (p *Project) PublicView() *Project {
	copied := *p
	if copied.Status != StatusCompleted {
		copied.DownloadLinks = []DownloadLink{}
	}
	if copied.DownloadLinks == nil {
		copied.DownloadLinks = []DownloadLink{}
	}
	return &copied
}

// # Inputs

// CreateInput is the admin payload for opening a project.
type CreateInput struct {
	ClientID string  `json:"clientId"`
	Name     string  `json:"name"`
	Type     Type    `json:"type"`
	Duration *string `json:"duration"`
	Quantity *int    `json:"quantity"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name          *string         `json:"name"`
	Type          *Type           `json:"type"`
	Duration      *string         `json:"duration"`
	Quantity      *int            `json:"quantity"`
	Status        *Status         `json:"status"`
	DownloadLinks *[]DownloadLink `json:"downloadLinks"`
	DeliveryDate  *time.Time      `json:"deliveryDate"`
}

// Field names used in validation errors.
const (
	FieldClientID = "clientId"
	FieldName     = "name"
	FieldType     = "type"
	FieldStatus   = "status"
	FieldQuantity = "quantity"
	FieldLinks    = "downloadLinks"
)
