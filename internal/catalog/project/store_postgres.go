// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package project

import (
	"context"
	"encoding/json"
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

func projectColumns() string {
	t := schema.CatalogProject
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ClientID, t.Name, t.Type, t.Duration, t.Quantity,
		t.Status, t.DownloadLinks, t.DeliveryDate, t.CreatedAt,
	)
}

func scanProject(row interface{ Scan(...any) error }) (*Project, error) {
	p := &Project{}
	var linksRaw []byte

	err := row.Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Type, &p.Duration, &p.Quantity,
		&p.Status, &linksRaw, &p.DeliveryDate, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(linksRaw, &p.DownloadLinks); err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) ListProjects(context context.Context, limit, offset int) ([]*Project, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogProject.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_projects")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, projectColumns(), schema.CatalogProject.Table, schema.CatalogProject.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, p)
	}

	return projects, total, nil
}

func (repository *PostgresRepository) ListProjectsByClient(context context.Context, clientID string) ([]*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`, projectColumns(), schema.CatalogProject.Table, schema.CatalogProject.ClientID, schema.CatalogProject.CreatedAt)

	rows, err := repository.db.Query(context, query, clientID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_projects_by_client")
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (repository *PostgresRepository) GetProject(context context.Context, id string) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, projectColumns(), schema.CatalogProject.Table, schema.CatalogProject.ID)

	p, err := scanProject(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_project")
	}
	return p, nil
}

func (repository *PostgresRepository) CreateProject(context context.Context, project *Project) error {
	t := schema.CatalogProject
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING %s
	`,
		t.Table,
		t.ID, t.ClientID, t.Name, t.Type, t.Duration, t.Quantity,
		t.Status, t.DownloadLinks, t.DeliveryDate, t.CreatedAt,
		t.CreatedAt,
	)

	linksRaw, err := json.Marshal(project.DownloadLinks)
	if err != nil {
		return dberr.Wrap(err, "encode_project")
	}

	err = repository.db.QueryRow(context, query,
		project.ID, project.ClientID, project.Name, project.Type,
		project.Duration, project.Quantity, project.Status, linksRaw, project.DeliveryDate,
	).Scan(&project.CreatedAt)
	return dberr.Wrap(err, "create_project")
}

func (repository *PostgresRepository) UpdateProject(context context.Context, project *Project) error {
	t := schema.CatalogProject
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1
	`,
		t.Table,
		t.Name, t.Type, t.Duration, t.Quantity, t.Status, t.DownloadLinks, t.DeliveryDate,
		t.ID,
	)

	linksRaw, err := json.Marshal(project.DownloadLinks)
	if err != nil {
		return dberr.Wrap(err, "encode_project")
	}

	cmd, err := repository.db.Exec(context, query,
		project.ID, project.Name, project.Type, project.Duration,
		project.Quantity, project.Status, linksRaw, project.DeliveryDate,
	)
	if err != nil {
		return dberr.Wrap(err, "update_project")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteProject(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogProject.Table, schema.CatalogProject.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountByClient(context context.Context, clientID string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.CatalogProject.Table, schema.CatalogProject.ClientID,
	)

	var total int
	if err := repository.db.QueryRow(context, query, clientID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_projects_by_client")
	}
	return total, nil
}
