package account

// mapAccountSet implements AccountSet using a map for O(1) lookups.
type mapAccountSet struct {
	accounts map[int64]struct{}
}

// NewMapAccountSet creates a new map-based account set.
func NewMapAccountSet(capacity int) AccountSet {
	return &mapAccountSet{
		accounts: make(map[int64]struct{}, capacity),
	}
}

// Contains checks if an account ID exists in the set.
func (s *mapAccountSet) Contains(accountID int64) bool {
	_, exists := s.accounts[accountID]
	return exists
}

// Size returns the number of accounts in the set.
func (s *mapAccountSet) Size() int {
	return len(s.accounts)
}

// Add adds an account ID to the set.
func (s *mapAccountSet) Add(accountID int64) {
	s.accounts[accountID] = struct{}{}
}
