package domain

import (
	"context"
	"time"
)

type Category struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryRepository interface {
	Create(ctx context.Context, name string) (*Category, error)
	GetByID(ctx context.Context, id int32) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	GetAll(ctx context.Context) ([]*Category, error)
	SearchByPrefix(ctx context.Context, prefix string, limit int32) ([]*Category, error)
	Update(ctx context.Context, id int32, name string) (*Category, error)
	Delete(ctx context.Context, id int32) error
}
