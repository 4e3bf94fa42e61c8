package jsonfile

import (
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the JSON file repositories: the baseline table is
// read from baselinePath and the account collection lives in accountsPath.
func NewRepositoryProvider(baselinePath, accountsPath string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newFileAccountRepository(accountsPath),
		BaselineRepo: newFileBaselineRepository(baselinePath),
	}
}
