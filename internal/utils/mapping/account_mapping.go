package mapping

import (
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
	}
	if table, ok := d.PersonalRates.Table(); ok {
		rt := ToModelRateTable(table)
		m.PersonalRates = &rt
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) (domain.Account, error) {
	d := domain.Account{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		PersonalRates: domain.InheritedRates(),
	}
	if m.PersonalRates != nil {
		rates, err := ToDomainRates(*m.PersonalRates)
		if err != nil {
			return domain.Account{}, fmt.Errorf("account %s personal rates: %w", m.ID, err)
		}
		d.PersonalRates = domain.OverriddenRates(rates)
	}
	return d, nil
}

// ToModelAccountSlice converts a slice of domain Accounts to a slice of model Accounts
func ToModelAccountSlice(ds []domain.Account) []models.Account {
	ms := make([]models.Account, len(ds))
	for i, d := range ds {
		ms[i] = ToModelAccount(d)
	}
	return ms
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts.
// Records must carry an id and a username, both unique.
func ToDomainAccountSlice(ms []models.Account) ([]domain.Account, error) {
	ds := make([]domain.Account, 0, len(ms))
	ids := make(map[string]struct{}, len(ms))
	usernames := make(map[string]struct{}, len(ms))
	for i, m := range ms {
		if m.ID == "" || m.Username == "" {
			return nil, fmt.Errorf("account record %d is missing id or username", i)
		}
		if _, dup := ids[m.ID]; dup {
			return nil, fmt.Errorf("duplicate account id %s", m.ID)
		}
		if _, dup := usernames[m.Username]; dup {
			return nil, fmt.Errorf("duplicate username %s", m.Username)
		}
		ids[m.ID] = struct{}{}
		usernames[m.Username] = struct{}{}

		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}
