package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadBaseline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exchange-rates.json")
	writeFile(t, path, `{"USD": 1, "eur": 0.9, "GBP": 0.8}`)

	rates, err := newFileBaselineRepository(path).LoadBaseline(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "GBP", "USD"}, rates.Codes())
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.9")))
}

func TestLoadBaseline_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"USD": 1,`},
		{"array instead of object", `[1, 2]`},
		{"null", `null`},
		{"zero rate", `{"USD": 1, "EUR": 0}`},
		{"negative rate", `{"USD": 1, "EUR": -0.9}`},
		{"string rate", `{"USD": 1, "EUR": "abc"}`},
		{"pivot off parity", `{"USD": 2, "EUR": 0.9}`},
		{"rate beyond float range", `{"USD": 1, "EUR": 1e2000000000}`},
		{"bad code", `{"US$": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "exchange-rates.json")
			writeFile(t, path, tt.content)

			_, err := newFileBaselineRepository(path).LoadBaseline(context.Background())
			assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := newFileBaselineRepository(filepath.Join(t.TempDir(), "nope.json")).LoadBaseline(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
	})
}

func TestAccounts_SaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "users.json")
	repo := newFileAccountRepository(path)

	accounts := []domain.Account{
		{ID: "1", Username: "inherits", PasswordHash: "h1", PersonalRates: domain.InheritedRates()},
		{ID: "2", Username: "overrides", PasswordHash: "h2", PersonalRates: domain.OverriddenRates(domain.Rates{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.912345678901234567"),
		})},
		{ID: "3", Username: "empty", PasswordHash: "h3", PersonalRates: domain.OverriddenRates(domain.Rates{})},
	}
	require.NoError(t, repo.SaveAll(context.Background(), accounts))

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.False(t, loaded[0].PersonalRates.IsOverridden())

	table, ok := loaded[1].PersonalRates.Table()
	require.True(t, ok)
	assert.Equal(t, "0.912345678901234567", table["EUR"].String(), "decimal rates survive unchanged")

	empty, ok := loaded[2].PersonalRates.Table()
	assert.True(t, ok, "an empty personal table is not the same as inheriting")
	assert.Empty(t, empty)

	var raw []map[string]json.RawMessage
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw[0], "personalRates", "inherited accounts omit the field")
	assert.Equal(t, `"h1"`, string(raw[0]["passwordHash"]))
	assert.JSONEq(t, `{}`, string(raw[2]["personalRates"]))
}

func TestAccounts_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `[{"id": "1"`},
		{"object instead of array", `{"id": "1"}`},
		{"missing username", `[{"id": "1", "passwordHash": "x"}]`},
		{"duplicate id", `[{"id": "1", "username": "a"}, {"id": "1", "username": "b"}]`},
		{"duplicate username", `[{"id": "1", "username": "a"}, {"id": "2", "username": "a"}]`},
		{"bad personal rate", `[{"id": "1", "username": "a", "personalRates": {"EUR": -1}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.json")
			writeFile(t, path, tt.content)

			_, err := newFileAccountRepository(path).LoadAll(context.Background())
			assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
			assert.NoFileExists(t, path, "unreadable file is moved aside")
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := newFileAccountRepository(filepath.Join(t.TempDir(), "users.json")).LoadAll(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
	})
}

func TestAccounts_UnreadableFileSurvivesNextSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	corrupt := `[{"id": "1", "username": "alice", "passwordHash": "h"},`
	writeFile(t, path, corrupt)

	repo := newFileAccountRepository(path)
	_, err := repo.LoadAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrConfigLoad)

	require.NoError(t, repo.SaveAll(context.Background(), []domain.Account{{ID: "2", Username: "bob"}}))

	moved, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	raw, err := os.ReadFile(moved[0])
	require.NoError(t, err)
	assert.Equal(t, corrupt, string(raw))

	accounts, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "bob", accounts[0].Username)
}

func TestAccounts_LoadEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, `[]`)

	accounts, err := newFileAccountRepository(path).LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccounts_SaveFailureLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "users.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := newFileAccountRepository(path).SaveAll(context.Background(), []domain.Account{{ID: "1", Username: "a"}})
	assert.ErrorIs(t, err, apperrors.ErrPersistenceWrite)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestAccounts_SaveWithCancelledContextKeepsPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := newFileAccountRepository(path)
	require.NoError(t, repo.SaveAll(context.Background(), []domain.Account{{ID: "1", Username: "a"}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := repo.SaveAll(ctx, []domain.Account{{ID: "2", Username: "b"}})
	assert.ErrorIs(t, err, apperrors.ErrPersistenceWrite)

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "1", loaded[0].ID)
}

func TestAccounts_ConcurrentSavesAlwaysLeaveAParseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := newFileAccountRepository(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			accounts := make([]domain.Account, 0, i+1)
			for j := 0; j <= i; j++ {
				accounts = append(accounts, domain.Account{ID: fmt.Sprint(j), Username: fmt.Sprintf("user-%d", j)})
			}
			assert.NoError(t, repo.SaveAll(context.Background(), accounts))
		}(i)
	}
	wg.Wait()

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, loaded)
}
