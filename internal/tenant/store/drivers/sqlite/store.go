package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Companies() store.Companies     { return &companiesRepo{q: s.q} }
func (s *Store) Users() store.Users             { return &usersRepo{q: s.q} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{q: s.q} }
func (s *Store) Accounts() store.Accounts       { return &accountsRepo{q: s.q} }
func (s *Store) Sessions() store.Sessions       { return &sessionsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapCompany(row gen.Company) domain.Company {
	return domain.Company{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Industry:  mapNullString(row.Industry),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		Role:        domain.Role(row.Role),
		IdentityRef: row.IdentityRef,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapInvitation(row gen.Invitation) domain.Invitation {
	return domain.Invitation{
		ID:         row.ID,
		CompanyID:  row.CompanyID,
		Email:      row.Email,
		Role:       domain.Role(row.Role),
		TokenHash:  row.TokenHash,
		ExpiresAt:  row.ExpiresAt,
		Status:     row.Status,
		CreatedBy:  mapNullString(row.CreatedBy),
		AcceptedBy: mapNullString(row.AcceptedBy),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func mapAccount(row gen.IdentityAccount) domain.Account {
	return domain.Account{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func mapSession(row gen.IdentitySession) domain.Session {
	return domain.Session{
		ID:        row.ID,
		AccountID: row.AccountID,
		ExpiresAt: row.ExpiresAt,
		Revoked:   row.Revoked,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
