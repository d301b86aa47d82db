// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package media

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Gallery

func (repository *PostgresRepository) ListGalleryImages(context context.Context, limit, offset int) ([]*GalleryImage, int, error) {
	const countQuery = `SELECT count(*) FROM content.gallery`
	const query = `
		SELECT id, title, image_url, created_at, updated_at
		FROM content.gallery
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery_images")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	var images []*GalleryImage
	for rows.Next() {
		image := &GalleryImage{}
		if err := rows.Scan(&image.ID, &image.Title, &image.ImageURL, &image.CreatedAt, &image.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_gallery_image")
		}
		images = append(images, image)
	}

	return images, total, nil
}

func (repository *PostgresRepository) GetGalleryImage(context context.Context, id int) (*GalleryImage, error) {
	const query = `
		SELECT id, title, image_url, created_at, updated_at
		FROM content.gallery
		WHERE id = $1`

	image := &GalleryImage{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&image.ID, &image.Title, &image.ImageURL, &image.CreatedAt, &image.UpdatedAt,
	)

	return image, dberr.Wrap(err, "get_gallery_image")
}

func (repository *PostgresRepository) CreateGalleryImage(context context.Context, image *GalleryImage) error {
	const query = `
		INSERT INTO content.gallery (title, image_url, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, image.Title, image.ImageURL).
		Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
	return dberr.Wrap(err, "create_gallery_image")
}

func (repository *PostgresRepository) UpdateGalleryImage(context context.Context, image *GalleryImage) error {
	const query = `
		UPDATE content.gallery
		SET title = $2, image_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, image.ID, image.Title, image.ImageURL).
		Scan(&image.UpdatedAt)
	return dberr.Wrap(err, "update_gallery_image")
}

func (repository *PostgresRepository) DeleteGalleryImage(context context.Context, id int) error {
	const query = `DELETE FROM content.gallery WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_image")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Videos

func (repository *PostgresRepository) ListVideos(context context.Context, limit, offset int) ([]*Video, int, error) {
	const countQuery = `SELECT count(*) FROM content.video`
	const query = `
		SELECT id, title, video_url, created_at, updated_at
		FROM content.video
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_videos")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}
	defer rows.Close()

	var videos []*Video
	for rows.Next() {
		video := &Video{}
		if err := rows.Scan(&video.ID, &video.Title, &video.VideoURL, &video.CreatedAt, &video.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video")
		}
		videos = append(videos, video)
	}

	return videos, total, nil
}

func (repository *PostgresRepository) GetVideo(context context.Context, id int) (*Video, error) {
	const query = `
		SELECT id, title, video_url, created_at, updated_at
		FROM content.video
		WHERE id = $1`

	video := &Video{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&video.ID, &video.Title, &video.VideoURL, &video.CreatedAt, &video.UpdatedAt,
	)

	return video, dberr.Wrap(err, "get_video")
}

func (repository *PostgresRepository) CreateVideo(context context.Context, video *Video) error {
	const query = `
		INSERT INTO content.video (title, video_url, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, video.Title, video.VideoURL).
		Scan(&video.ID, &video.CreatedAt, &video.UpdatedAt)
	return dberr.Wrap(err, "create_video")
}

func (repository *PostgresRepository) UpdateVideo(context context.Context, video *Video) error {
	const query = `
		UPDATE content.video
		SET title = $2, video_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, video.ID, video.Title, video.VideoURL).
		Scan(&video.UpdatedAt)
	return dberr.Wrap(err, "update_video")
}

func (repository *PostgresRepository) DeleteVideo(context context.Context, id int) error {
	const query = `DELETE FROM content.video WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_video")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
