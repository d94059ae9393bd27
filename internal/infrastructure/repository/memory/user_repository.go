package memory

import (
	"context"
	"sync"

	"github.com/oddstack/prediction-league/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &UserRepository{users: byID}
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok, nil
}
