package repository

import (
	"context"

	"demoapps/internal/post/model"
	"demoapps/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// DefaultLimit is how many posts the front page shows.
const DefaultLimit = 10

const listPostsQuery = `SELECT title, content FROM posts ORDER BY id DESC LIMIT $1`

type PostRepository struct {
	DB    *sqlx.DB
	Limit int
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{DB: db, Limit: DefaultLimit}
}

// ListPosts returns the newest posts first. Each call runs on its own
// connection, released when the call returns.
func (r *PostRepository) ListPosts(ctx context.Context) ([]model.Post, error) {
	conn, err := r.DB.Connx(ctx)
	if err != nil {
		logger.Sugar.Errorf("Failed to open session: %v", err)
		return nil, err
	}
	defer conn.Close()

	posts := []model.Post{}
	if err := conn.SelectContext(ctx, &posts, listPostsQuery, r.Limit); err != nil {
		logger.Sugar.Errorf("Failed to list posts: %v", err)
		return nil, err
	}
	return posts, nil
}
