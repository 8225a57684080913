package service

import (
	"context"

	"demoapps/internal/post/model"
	"demoapps/internal/post/repository"
)

type PostService struct {
	Repo *repository.PostRepository
}

func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{Repo: repo}
}

// FrontPage returns the posts shown on the blog's index.
func (s *PostService) FrontPage(ctx context.Context) ([]model.Post, error) {
	return s.Repo.ListPosts(ctx)
}
