package sqlite

import (
	"context"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	return r.q.CreateSession(ctx, gen.CreateSessionParams{
		ID:        s.ID,
		AccountID: s.AccountID,
		ExpiresAt: s.ExpiresAt,
	})
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	row, err := r.q.GetSessionByID(ctx, id)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return mapSession(row), nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	return r.q.RevokeSession(ctx, id)
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	return r.q.DeleteExpiredSessions(ctx)
}
