package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/models"
	"github.com/SscSPs/currency_converter_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository stores the account collection in the accounts table.
// personal_rates is NULL for accounts that inherit the baseline.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) LoadAll(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT id, username, password_hash, personal_rates
		FROM accounts
		ORDER BY position, id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query accounts: %v", apperrors.ErrConfigLoad, err)
	}
	defer rows.Close()

	var records []models.Account
	for rows.Next() {
		var m models.Account
		var personalRates []byte
		if err := rows.Scan(&m.ID, &m.Username, &m.PasswordHash, &personalRates); err != nil {
			return nil, fmt.Errorf("%w: scan account: %v", apperrors.ErrConfigLoad, err)
		}
		if personalRates != nil {
			var table models.RateTable
			if err := json.Unmarshal(personalRates, &table); err != nil {
				return nil, fmt.Errorf("%w: account %s personal rates: %v", apperrors.ErrConfigLoad, m.ID, err)
			}
			// A JSON null in the column reads as inherited.
			if table != nil {
				m.PersonalRates = &table
			}
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate accounts: %v", apperrors.ErrConfigLoad, err)
	}

	accounts, err := mapping.ToDomainAccountSlice(records)
	if err != nil {
		return nil, fmt.Errorf("%w: accounts: %v", apperrors.ErrConfigLoad, err)
	}
	return accounts, nil
}

// SaveAll replaces the stored collection in one transaction: every account is
// upserted and rows whose id is no longer present are removed.
func (r *PgxAccountRepository) SaveAll(ctx context.Context, accounts []domain.Account) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to roll back account save", slog.String("error", rbErr.Error()))
		}
	}()

	upsert := `
		INSERT INTO accounts (id, username, password_hash, personal_rates, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			password_hash = EXCLUDED.password_hash,
			personal_rates = EXCLUDED.personal_rates,
			position = EXCLUDED.position;
	`
	ids := make([]string, 0, len(accounts))
	for i, m := range mapping.ToModelAccountSlice(accounts) {
		var personalRates any
		if m.PersonalRates != nil {
			encoded, err := json.Marshal(m.PersonalRates)
			if err != nil {
				return fmt.Errorf("%w: encode personal rates for %s: %v", apperrors.ErrPersistenceWrite, m.ID, err)
			}
			personalRates = string(encoded)
		}
		if _, err := tx.Exec(ctx, upsert, m.ID, m.Username, m.PasswordHash, personalRates, i); err != nil {
			return fmt.Errorf("%w: save account %s: %v", apperrors.ErrPersistenceWrite, m.ID, err)
		}
		ids = append(ids, m.ID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE NOT (id = ANY($1));`, ids); err != nil {
		return fmt.Errorf("%w: prune accounts: %v", apperrors.ErrPersistenceWrite, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	return nil
}
