package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter_app/internal/models"
	"github.com/SscSPs/currency_converter_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBaselineRepository reads the baseline rates from the baseline_rates table.
type PgxBaselineRepository struct {
	BaseRepository
}

func newPgxBaselineRepository(pool *pgxpool.Pool) *PgxBaselineRepository {
	return &PgxBaselineRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBaselineRepository implements portsrepo.BaselineRateRepositoryFacade
var _ portsrepo.BaselineRateRepositoryFacade = (*PgxBaselineRepository)(nil)

func (r *PgxBaselineRepository) LoadBaseline(ctx context.Context) (domain.Rates, error) {
	// rate::text keeps the exact NUMERIC literal.
	rows, err := r.Pool.Query(ctx, `SELECT currency_code, rate::text FROM baseline_rates`)
	if err != nil {
		return nil, fmt.Errorf("%w: query baseline rates: %v", apperrors.ErrConfigLoad, err)
	}
	defer rows.Close()

	table := make(models.RateTable)
	for rows.Next() {
		var code, rate string
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("%w: scan baseline rate: %v", apperrors.ErrConfigLoad, err)
		}
		table[code] = json.Number(rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate baseline rates: %v", apperrors.ErrConfigLoad, err)
	}

	rates, err := mapping.ToDomainRates(table)
	if err != nil {
		return nil, fmt.Errorf("%w: baseline rates: %v", apperrors.ErrConfigLoad, err)
	}
	return rates, nil
}
