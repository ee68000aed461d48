package domain

import "errors"

// Ошибки целостности данных каталога. Это ошибки авторов каталога,
// а не пользовательского ввода, поэтому они не подавляются.
var (
	ErrRegionNotFound       = errors.New("region not found")
	ErrNoRiskZones          = errors.New("region has no risk zones")
	ErrSeriesLengthMismatch = errors.New("historical series length does not match labels")
	ErrMissingFactor        = errors.New("risk factor missing")
	ErrEmptyCatalog         = errors.New("catalog has no regions")
	ErrDatasetMismatch      = errors.New("dataset does not match region data")
)

// Ошибки ввода
var (
	ErrInvalidRiskLevel = errors.New("invalid risk level")
	ErrInvalidView      = errors.New("invalid view")
	ErrInvalidBaseLayer = errors.New("invalid base layer")
	ErrEmptyRiskFilter  = errors.New("risk filter must contain at least one level")
	ErrSessionNotFound  = errors.New("session not found")
)
