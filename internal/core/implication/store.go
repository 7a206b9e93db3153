package implication

import "context"

type Repository interface {
	// Find returns the implication for the (antecedent, consequent) pair,
	// or (nil, nil) when no such pair exists.
	Find(context context.Context, antecedent, consequent string) (*Record, error)
	Create(context context.Context, antecedent, consequent string) (*Record, error)
	Approve(context context.Context, id int, approverID string) error
	Delete(context context.Context, id int) error
}
