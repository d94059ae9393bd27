package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oddstack/prediction-league/internal/domain/user"
	qb "github.com/oddstack/prediction-league/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(
			qb.Eq("id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return user.User{
		ID:        row.ID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
	}, true, nil
}
