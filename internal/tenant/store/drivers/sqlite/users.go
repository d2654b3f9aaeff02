package sqlite

import (
	"context"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        u.Role.String(),
		IdentityRef: u.IdentityRef,
	})
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByIdentityRef(ctx context.Context, identityRef string) (domain.User, error) {
	row, err := r.q.GetUserByIdentityRef(ctx, identityRef)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	rows, err := r.q.ListUsersByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUser(row))
	}
	return users, nil
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, userID string, role domain.Role) error {
	return r.q.UpdateUserRole(ctx, gen.UpdateUserRoleParams{
		Role: role.String(),
		ID:   userID,
	})
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return r.q.DeleteUser(ctx, userID)
}
