package services

import (
	"context"
	"fmt"

	"github.com/isdelr/phishstats/internal/models"
	"github.com/jmoiron/sqlx"
)

// UserServiceProvider defines the interface for user queries.
type UserServiceProvider interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUsersByPermission(ctx context.Context, permission models.Permission) ([]models.User, error)
	GetUsersByPasswordHashes(ctx context.Context, hashes []string, match bool) ([]models.User, error)
	GetDistinctPasswordHashes(ctx context.Context) ([]string, error)
}

// userColumns maps NULL text cells to "". Numeric cells stay NULL and scan
// into invalid models.Count values.
const userColumns = `id,
	COALESCE(username, '') AS username,
	COALESCE(phone, '') AS phone,
	COALESCE(password_hash, '') AS password_hash,
	COALESCE(province, '') AS province,
	permissions,
	total_emails,
	phishing_emails,
	clicked_emails`

// UserService provides read access to the users table.
type UserService struct {
	db *sqlx.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sqlx.DB) *UserService {
	return &UserService{db: db}
}

// GetAllUsers returns every user ordered by id.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, "SELECT "+userColumns+" FROM users ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

// GetUsersByPermission returns the admin (1) or normal (0) cohort.
func (s *UserService) GetUsersByPermission(ctx context.Context, permission models.Permission) ([]models.User, error) {
	if !permission.Valid() {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidPermission, int(permission))
	}
	users := []models.User{}
	query := "SELECT " + userColumns + " FROM users WHERE permissions = ? ORDER BY id"
	if err := s.db.SelectContext(ctx, &users, query, int(permission)); err != nil {
		return nil, fmt.Errorf("select users with permission %d: %w", permission, err)
	}
	return users, nil
}

// GetUsersByPasswordHashes returns the users whose password hash is in hashes
// (match=true) or not in hashes (match=false). With no hashes, nothing matches.
func (s *UserService) GetUsersByPasswordHashes(ctx context.Context, hashes []string, match bool) ([]models.User, error) {
	if len(hashes) == 0 {
		if match {
			return []models.User{}, nil
		}
		return s.GetAllUsers(ctx)
	}

	op := "IN"
	if !match {
		op = "NOT IN"
	}
	query, args, err := sqlx.In("SELECT "+userColumns+" FROM users WHERE password_hash "+op+" (?) ORDER BY id", hashes)
	if err != nil {
		return nil, fmt.Errorf("build hash query: %w", err)
	}

	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select users by password hash: %w", err)
	}
	return users, nil
}

// GetDistinctPasswordHashes returns every stored password hash once.
func (s *UserService) GetDistinctPasswordHashes(ctx context.Context) ([]string, error) {
	hashes := []string{}
	query := "SELECT DISTINCT password_hash FROM users WHERE password_hash IS NOT NULL ORDER BY password_hash"
	if err := s.db.SelectContext(ctx, &hashes, query); err != nil {
		return nil, fmt.Errorf("select password hashes: %w", err)
	}
	return hashes, nil
}
