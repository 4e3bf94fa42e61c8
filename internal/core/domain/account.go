package domain

// Account is a registered user together with their personal rate table.
type Account struct {
	ID            string // Primary Key (UUID)
	Username      string
	PasswordHash  string
	PersonalRates PersonalRates
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	a.PersonalRates = a.PersonalRates.Clone()
	return a
}

// GetUserID, GetUsername and GetName let Account satisfy dto.ToUserResponse.
func (a Account) GetUserID() string   { return a.ID }
func (a Account) GetUsername() string { return a.Username }
func (a Account) GetName() string     { return a.Username }
