package post

import "context"

type Repository interface {
	// FindByTag returns up to limit works carrying the given tag, newest
	// first. A limit <= 0 returns all matching works.
	FindByTag(context context.Context, tag string, limit int) ([]*Work, error)
	UpdateTags(context context.Context, id int, tagString string) error
}
