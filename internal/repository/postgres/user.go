package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"secondlook/internal/domain"
	"secondlook/internal/domain/models"
	"secondlook/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewUserRepository creates a new PostgresUserRepository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new user. Duplicate emails surface as ConflictError -
// email is the unique identity key (unique index, see cmd/seed).
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, email, role, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Role,
		user.Verified,
		user.CreatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("account with email %s already exists", user.Email),
				ResourceType: "user",
				ResourceID:   user.Email,
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, role, verified, created_at
		FROM %s
		WHERE email = $1
	`, r.tables.Users)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Verified,
		&user.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// ListByRole retrieves all users holding the given role
func (r *PostgresUserRepository) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, role, verified, created_at
		FROM %s
		WHERE role = $1
		ORDER BY created_at DESC
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.Verified,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// SetVerified marks a user as verified
func (r *PostgresUserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := fmt.Sprintf(`
		UPDATE %s SET verified = $2 WHERE id = $1
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, verified)
	if err != nil {
		return fmt.Errorf("set user verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a user record
func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE id = $1
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
