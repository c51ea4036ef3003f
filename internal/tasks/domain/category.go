package domain

import "context"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	ExistsByID(ctx context.Context, categoryID int64) (bool, error)
}
