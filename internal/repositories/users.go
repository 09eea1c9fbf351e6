package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"dashkit/internal/db"
	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	"dashkit/internal/store"
)

const mysqlDuplicateEntry = 1062

// MySQLUserRepository stores accounts in the users table.
type MySQLUserRepository struct {
	DB *sqlx.DB
}

const userColumns = `id, name, email, username, password_hash, role, COALESCE(org_id,'') AS org_id, created_at`

// FindByLogin looks an account up by username or email.
func (r MySQLUserRepository) FindByLogin(ctx context.Context, identifier string) (models.Account, error) {
	var acc models.Account
	err := r.DB.GetContext(ctx, &acc,
		`SELECT `+userColumns+` FROM users WHERE username = ? OR email = ? LIMIT 1`,
		identifier, identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find user: %w", err)
	}
	return acc, nil
}

func (r MySQLUserRepository) FindByID(ctx context.Context, id domain.ID) (models.Account, error) {
	var acc models.Account
	err := r.DB.GetContext(ctx, &acc, `SELECT `+userColumns+` FROM users WHERE id = ?`, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find user: %w", err)
	}
	return acc, nil
}

func (r MySQLUserRepository) Create(ctx context.Context, acc models.Account) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, username, password_hash, role, org_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		acc.ID, acc.Name, acc.Email, acc.Username, acc.PasswordHash, acc.Role, db.NullIfEmpty(acc.OrgID), acc.CreatedAt)
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: "user", Msg: "username or email already registered", Err: err}
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r MySQLUserRepository) List(ctx context.Context) ([]models.Account, error) {
	out := []models.Account{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// KVUserRepository keeps the whole account list under one store key,
// the way the dashboard keeps its demo users.
type KVUserRepository struct {
	mu sync.Mutex
	kv store.KV
}

func NewKVUserRepository(kv store.KV) *KVUserRepository {
	return &KVUserRepository{kv: kv}
}

func (r *KVUserRepository) load(ctx context.Context) ([]models.Account, error) {
	return store.GetJSONOr(ctx, r.kv, store.KeyDemoUsers, []models.Account{})
}

func (r *KVUserRepository) FindByLogin(ctx context.Context, identifier string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts, err := r.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for _, a := range accounts {
		if a.Username == identifier || strings.EqualFold(a.Email, identifier) {
			return a, nil
		}
	}
	return models.Account{}, domain.NotFoundError{Resource: "user"}
}

func (r *KVUserRepository) FindByID(ctx context.Context, id domain.ID) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts, err := r.load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, domain.NotFoundError{Resource: "user"}
}

func (r *KVUserRepository) Create(ctx context.Context, acc models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Username == acc.Username || strings.EqualFold(a.Email, acc.Email) {
			return domain.ConflictError{Resource: "user", Msg: "username or email already registered"}
		}
	}
	return store.SetJSON(ctx, r.kv, store.KeyDemoUsers, append(accounts, acc))
}

func (r *KVUserRepository) List(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}
