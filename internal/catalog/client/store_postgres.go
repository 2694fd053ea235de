// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package client

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videoventa-mx/videoventa/internal/platform/database/schema"
	"github.com/videoventa-mx/videoventa/internal/platform/dberr"
)

// PostgresRepository is the pgx-backed implementation of [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListClients(context context.Context, limit, offset int) ([]*Client, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogClient.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_clients")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.CatalogClient.ID, schema.CatalogClient.Name, schema.CatalogClient.Email,
		schema.CatalogClient.Phone, schema.CatalogClient.Username, schema.CatalogClient.CreatedAt,
		schema.CatalogClient.Table, schema.CatalogClient.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_clients")
	}
	defer rows.Close()

	var clients []*Client
	for rows.Next() {
		c := &Client{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Username, &c.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_client")
		}
		clients = append(clients, c)
	}

	return clients, total, nil
}

func (repository *PostgresRepository) GetClient(context context.Context, id string) (*Client, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogClient.ID, schema.CatalogClient.Name, schema.CatalogClient.Email,
		schema.CatalogClient.Phone, schema.CatalogClient.Username, schema.CatalogClient.CreatedAt,
		schema.CatalogClient.Table, schema.CatalogClient.ID,
	)

	c := &Client{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Username, &c.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_client")
	}
	return c, nil
}

func (repository *PostgresRepository) GetClientByUsername(context context.Context, username string) (*Client, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogClient.ID, schema.CatalogClient.Name, schema.CatalogClient.Email,
		schema.CatalogClient.Phone, schema.CatalogClient.Username, schema.CatalogClient.CreatedAt,
		schema.CatalogClient.Table, schema.CatalogClient.Username,
	)

	c := &Client{}
	err := repository.db.QueryRow(context, query, username).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Username, &c.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_client_by_username")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateClient(context context.Context, client *Client) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.CatalogClient.Table,
		schema.CatalogClient.ID, schema.CatalogClient.Name, schema.CatalogClient.Email,
		schema.CatalogClient.Phone, schema.CatalogClient.Username, schema.CatalogClient.CreatedAt,
		schema.CatalogClient.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		client.ID, client.Name, client.Email, client.Phone, client.Username,
	).Scan(&client.CreatedAt)
	return dberr.Wrap(err, "create_client")
}

func (repository *PostgresRepository) UpdateClient(context context.Context, client *Client) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.CatalogClient.Table,
		schema.CatalogClient.Name, schema.CatalogClient.Email, schema.CatalogClient.Phone, schema.CatalogClient.Username,
		schema.CatalogClient.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		client.ID, client.Name, client.Email, client.Phone, client.Username,
	)
	if err != nil {
		return dberr.Wrap(err, "update_client")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteClient(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogClient.Table, schema.CatalogClient.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_client")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
