package dal

import (
	"context"

	"cinetick/internal/models"
)

// UnitOfWork binds one repository per entity type to one store handle and
// flushes all staged changes through a single Commit. Create one per
// request; it must not be shared across requests.
type UnitOfWork struct {
	Projections   *ProjectionRepository
	Movies        *Repository[models.Movie]
	Ratings       *Repository[models.Rating]
	Organizations *Repository[models.Organization]
	Persons       *Repository[models.Person]
	Tickets       *Repository[models.Ticket]
}

// NewUnitOfWork builds a fresh unit of work over the given stores.
func NewUnitOfWork(s Stores) *UnitOfWork {
	return &UnitOfWork{
		Projections:   NewProjectionRepository(s.Projections()),
		Movies:        NewRepository[models.Movie](s.Movies()),
		Ratings:       NewRepository[models.Rating](s.Ratings()),
		Organizations: NewRepository[models.Organization](s.Organizations()),
		Persons:       NewRepository[models.Person](s.Persons()),
		Tickets:       NewRepository[models.Ticket](s.Tickets()),
	}
}

type committer interface {
	commit(ctx context.Context) (int64, error)
}

// Commit flushes every repository's staged adds, updates and removes in a
// fixed order, projections first and tickets last, and returns the total
// number of affected documents.
//
// This is batching, not a transaction: a failure propagates immediately and
// repositories flushed before it stay committed. Callers needing the seat
// invariant do not rely on cross-repository atomicity; the conditional seat
// operations enforce it at the store.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	order := []committer{
		u.Projections,
		u.Movies,
		u.Ratings,
		u.Organizations,
		u.Persons,
		u.Tickets,
	}

	var total int64
	for _, repo := range order {
		n, err := repo.commit(ctx)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// PendingChanges returns the number of staged operations across all
// repositories.
func (u *UnitOfWork) PendingChanges() int {
	return u.Projections.PendingChanges() +
		u.Movies.PendingChanges() +
		u.Ratings.PendingChanges() +
		u.Organizations.PendingChanges() +
		u.Persons.PendingChanges() +
		u.Tickets.PendingChanges()
}
