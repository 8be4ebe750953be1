// Package mocks provides centralized mock implementations for testing.
//
// Store mocks are built on testify/mock and are meant for failure paths that a
// real in-memory database cannot produce (connection loss, unexpected driver
// errors). Happy paths are tested against SQLite through internal/testdb.
//
//	users := new(mocks.TestifyMockUserStore)
//	users.On("GetByToken", mock.Anything, "tok").Return(nil, errors.New("db down"))
package mocks
