package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter_app/internal/models"
	"github.com/SscSPs/currency_converter_app/internal/utils/mapping"
)

// FileBaselineRepository reads the baseline rates from a JSON object of
// currency code to rate, e.g. {"USD": 1, "EUR": 0.9}.
type FileBaselineRepository struct {
	path string
}

func newFileBaselineRepository(path string) *FileBaselineRepository {
	return &FileBaselineRepository{path: path}
}

// Ensure FileBaselineRepository implements portsrepo.BaselineRateRepositoryFacade
var _ portsrepo.BaselineRateRepositoryFacade = (*FileBaselineRepository)(nil)

func (r *FileBaselineRepository) LoadBaseline(ctx context.Context) (domain.Rates, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read baseline rates %s: %v", apperrors.ErrConfigLoad, r.path, err)
	}

	var table models.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: parse baseline rates %s: %v", apperrors.ErrConfigLoad, r.path, err)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: baseline rates %s is not an object", apperrors.ErrConfigLoad, r.path)
	}

	rates, err := mapping.ToDomainRates(table)
	if err != nil {
		return nil, fmt.Errorf("%w: baseline rates %s: %v", apperrors.ErrConfigLoad, r.path, err)
	}
	return rates, nil
}
