package staff

import "context"

// Repository is the staff directory storage contract.
type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id int) (*Staff, error)
	GetByUsername(ctx context.Context, username string) (*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
	ListDoctors(ctx context.Context) ([]*Staff, error)
	Update(ctx context.Context, id int, patch *Patch) (*Staff, error)
	Delete(ctx context.Context, id int) error
}
