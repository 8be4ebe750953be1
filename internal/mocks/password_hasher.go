package mocks

import (
	"errors"
	"sync"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// Hash returns "hashed:" + password; Compare succeeds when the hash has that form.
type MockPasswordHasher struct {
	// HashFn and CompareFn allow for custom logic in tests
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	mu sync.Mutex
	// CompareCalledWith stores the hashes passed to Compare, in call order
	CompareCalledWith []string
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.CompareCalledWith = append(m.CompareCalledWith, hashedPassword)
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// CompareCalls returns how many times Compare was called.
func (m *MockPasswordHasher) CompareCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CompareCalledWith)
}
