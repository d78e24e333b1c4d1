// Package mocks holds testify mocks of the contracts interfaces shared by the
// usecase, middleware and controller tests.
package mocks
