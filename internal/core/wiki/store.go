package wiki

import "context"

type Repository interface {
	// FindByTitle returns the page with the given title, or (nil, nil)
	// when no such page exists.
	FindByTitle(context context.Context, title string) (*Page, error)
	Create(context context.Context, title, body string) (*Page, error)
	Update(context context.Context, id int, fields UpdateFields) error
}
