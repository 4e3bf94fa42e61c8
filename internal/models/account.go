package models

import "encoding/json"

// RateTable is the stored form of a rate table. Values are kept as JSON number
// literals so decimal rates survive a save/load cycle unchanged.
type RateTable map[string]json.Number

// Account is the stored form of a domain.Account.
// PersonalRates is nil when the account inherits the baseline; an empty table is
// a distinct, overridden state and is written as {}.
type Account struct {
	ID            string     `json:"id" db:"id"`
	Username      string     `json:"username" db:"username"`
	PasswordHash  string     `json:"passwordHash" db:"password_hash"`
	PersonalRates *RateTable `json:"personalRates,omitempty" db:"personal_rates"`
}
