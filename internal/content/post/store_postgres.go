// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package post

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/database/schema"
	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var postColumns = fmt.Sprintf(`
	p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
	p.%s, p.%s, p.%s, p.%s, p.%s,
	a.%s, a.%s, a.%s, a.%s`,
	schema.ContentPost.ID, schema.ContentPost.Title, schema.ContentPost.Slug,
	schema.ContentPost.ShortDesc, schema.ContentPost.Description,
	schema.ContentPost.PosterURL, schema.ContentPost.ImageURL,
	schema.ContentPost.Type, schema.ContentPost.Status, schema.ContentPost.Published,
	schema.ContentPost.CreatedAt, schema.ContentPost.UpdatedAt,
	schema.UserAccount.ID, schema.UserAccount.Email,
	schema.UserAccount.FirstName, schema.UserAccount.LastName,
)

var postFrom = fmt.Sprintf(`
	FROM %s p
	LEFT JOIN %s a ON a.%s = p.%s`,
	schema.ContentPost.Table, schema.UserAccount.Table,
	schema.UserAccount.ID, schema.ContentPost.PublishedByID,
)

func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	var publisherID, publisherEmail, publisherFirst, publisherLast *string

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.ShortDesc, &post.Description,
		&post.PosterURL, &post.ImageURL, &post.Type, &post.Status, &post.Published,
		&post.CreatedAt, &post.UpdatedAt,
		&publisherID, &publisherEmail, &publisherFirst, &publisherLast,
	)
	if err != nil {
		return nil, err
	}

	if publisherID != nil {
		post.PublishedBy = &Publisher{
			ID:        *publisherID,
			Email:     *publisherEmail,
			FirstName: *publisherFirst,
			LastName:  *publisherLast,
		}
	}
	return post, nil
}

func (repository *PostgresRepository) ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error) {
	query := `SELECT ` + postColumns + postFrom + ` WHERE TRUE`
	countQuery := `SELECT count(*) FROM ` + schema.ContentPost.Table + ` p WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Type != "" {
		addClause(`p.`+schema.ContentPost.Type+` =`, f.Type)
	}
	if f.Status != "" {
		addClause(`p.`+schema.ContentPost.Status+` =`, f.Status)
	}
	if f.PublishedBy != "" {
		addClause(`p.`+schema.ContentPost.PublishedByID+` =`, f.PublishedBy)
	}
	if f.Query != "" {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		clause := ` AND (p.` + schema.ContentPost.Title + ` ILIKE ` + placeholder +
			` OR p.` + schema.ContentPost.Slug + ` ILIKE ` + placeholder +
			` OR p.` + schema.ContentPost.Description + ` ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY p.created_at ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}

	return posts, total, nil
}

func (repository *PostgresRepository) GetPostBySlug(context context.Context, slug string) (*Post, error) {
	query := `SELECT ` + postColumns + postFrom + ` WHERE p.slug = $1`

	post, err := scanPost(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}
	return post, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, post *Post, publishedByID string) error {
	const query = `
		INSERT INTO content.post
			(title, slug, short_desc, description, poster_url, image_url, type, status, published, published_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		post.Title, post.Slug, post.ShortDesc, post.Description, post.PosterURL,
		post.ImageURL, post.Type, post.Status, post.Published, publishedByID,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) UpdatePost(context context.Context, post *Post) error {
	const query = `
		UPDATE content.post
		SET title = $2, short_desc = $3, description = $4, poster_url = $5,
			image_url = $6, type = $7, status = $8, published = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		post.ID, post.Title, post.ShortDesc, post.Description, post.PosterURL,
		post.ImageURL, post.Type, post.Status, post.Published,
	).Scan(&post.UpdatedAt)
	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) DeletePostBySlug(context context.Context, slug string) error {
	const query = `DELETE FROM content.post WHERE slug = $1`

	cmd, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
