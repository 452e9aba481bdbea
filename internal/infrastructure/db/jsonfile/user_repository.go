package jsonfile

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gestiondocumental/document-system/internal/api/metrics"
	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

const usersCollection = "users"

// UserRepository persists users in <data>/users.json.
type UserRepository struct {
	coll *Collection[domain.User]
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{coll: NewCollection[domain.User](s, usersCollection)}
}

// List returns every user, or the exact-cargo subset when cargo is non-empty.
// A cargo filter that matches nothing is an error; an unfiltered empty
// collection is not.
func (r *UserRepository) List(ctx context.Context, cargo string) ([]domain.User, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(usersCollection, "load"))
	users, err := r.coll.Load()
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}

	if cargo == "" {
		return users, nil
	}

	matched := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Cargo == cargo {
			matched = append(matched, u)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrNoUsersForCargo
	}
	return matched, nil
}

// FindByCargo returns the first user with the given cargo. Cargo is not a
// uniqueness constraint; first match wins.
func (r *UserRepository) FindByCargo(ctx context.Context, cargo string) (*domain.User, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(usersCollection, "load"))
	users, err := r.coll.Load()
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Cargo == cargo {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends the user with a freshly allocated id. The caller supplies
// Clave already hashed.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(usersCollection, "save"))
	defer timer.ObserveDuration()

	var created domain.User
	_, err := r.coll.Update(func(users []domain.User) ([]domain.User, error) {
		user.ID = nextUserID(users)
		created = user
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merges the supplied fields into the stored record.
func (r *UserRepository) Update(ctx context.Context, id int, update ports.UserUpdate) (*domain.User, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(usersCollection, "save"))
	defer timer.ObserveDuration()

	var merged domain.User
	_, err := r.coll.Update(func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if users[i].ID != id {
				continue
			}
			applyUserUpdate(&users[i], update)
			merged = users[i]
			return users, nil
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the record with the given id.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(usersCollection, "save"))
	defer timer.ObserveDuration()

	_, err := r.coll.Update(func(users []domain.User) ([]domain.User, error) {
		kept := make([]domain.User, 0, len(users))
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		if len(kept) == len(users) {
			return nil, domain.ErrUserNotFound
		}
		return kept, nil
	})
	return err
}

func nextUserID(users []domain.User) int {
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

func applyUserUpdate(u *domain.User, up ports.UserUpdate) {
	if up.Cargo != nil {
		u.Cargo = *up.Cargo
	}
	if up.Nombres != nil {
		u.Nombres = *up.Nombres
	}
	if up.Apellidos != nil {
		u.Apellidos = *up.Apellidos
	}
	if up.Clave != nil {
		u.Clave = *up.Clave
	}
}
