package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrSurveyNotFound         = errors.New("survey not found")
	ErrSurveyClosed           = errors.New("survey is closed")
	ErrResultNotFound         = errors.New("result not found")
	ErrHousingCompanyNotFound = errors.New("housing company not found")
	ErrInvalidInput           = errors.New("invalid input")

	// ErrSummaryNotFound means a computed bucket combination has no
	// catalog row. The catalogs are seeded to cover every combination,
	// so this is a data-integrity failure, not a caller error.
	ErrSummaryNotFound = errors.New("result summary not found")

	// ErrNotScored means a survey's result is requested before the
	// response floor was reached and no scoring has happened yet.
	ErrNotScored = errors.New("survey has not been scored yet")
)
