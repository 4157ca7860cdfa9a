package feature

import (
	"context"
	"strings"
)

type Service interface {
	Add(ctx context.Context, imageURL string) (*Image, error)
	List(ctx context.Context) ([]Image, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, imageURL string) (*Image, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrEmptyImage
	}
	return s.repo.Create(ctx, imageURL)
}

func (s *service) List(ctx context.Context) ([]Image, error) {
	return s.repo.List(ctx)
}
