package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter_app/internal/models"
	"github.com/SscSPs/currency_converter_app/internal/utils/mapping"
)

// FileAccountRepository stores the whole account collection as a JSON array.
type FileAccountRepository struct {
	path string
	// writeMu keeps at most one SaveAll in its write phase.
	writeMu sync.Mutex
}

func newFileAccountRepository(path string) *FileAccountRepository {
	return &FileAccountRepository{path: path}
}

// Ensure FileAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*FileAccountRepository)(nil)

// LoadAll reads the collection. A file that exists but cannot be decoded is moved
// aside to "<path>.corrupt-<UTC timestamp>" so the next save cannot overwrite it.
func (r *FileAccountRepository) LoadAll(ctx context.Context) ([]domain.Account, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read accounts %s: %v", apperrors.ErrConfigLoad, r.path, err)
	}

	var records []models.Account
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, r.quarantine(ctx, fmt.Errorf("parse accounts %s: %v", r.path, err))
	}

	accounts, err := mapping.ToDomainAccountSlice(records)
	if err != nil {
		return nil, r.quarantine(ctx, fmt.Errorf("accounts %s: %v", r.path, err))
	}
	return accounts, nil
}

// quarantine renames the unreadable file and returns cause as an ErrConfigLoad.
func (r *FileAccountRepository) quarantine(ctx context.Context, cause error) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	aside := fmt.Sprintf("%s.corrupt-%s", r.path, time.Now().UTC().Format("20060102T150405.000000000Z"))
	if err := os.Rename(r.path, aside); err != nil {
		logger.Error("Failed to move unreadable accounts file aside",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", apperrors.ErrConfigLoad, cause)
	}

	logger.Warn("Moved unreadable accounts file aside", slog.String("path", r.path), slog.String("moved_to", aside))
	return fmt.Errorf("%w: %v (moved to %s)", apperrors.ErrConfigLoad, cause, aside)
}

func (r *FileAccountRepository) SaveAll(ctx context.Context, accounts []domain.Account) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}

	data, err := json.MarshalIndent(mapping.ToModelAccountSlice(accounts), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode accounts: %v", apperrors.ErrPersistenceWrite, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := writeFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}
	return nil
}
