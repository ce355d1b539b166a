package patient

import "context"

// Repository is the patient storage contract.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int) (*Patient, error)
	GetByMRN(ctx context.Context, mrn string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Search(ctx context.Context, query string) ([]*Patient, error)
	ListRecent(ctx context.Context, limit int) ([]*Patient, error)
	Update(ctx context.Context, id int, patch *Patch) (*Patient, error)
	Delete(ctx context.Context, id int) error
}
