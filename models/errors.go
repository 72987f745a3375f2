package models

import "errors"

var (
	ErrInvalidCountryName = errors.New("invalid country name")
	ErrInvalidCountryCode = errors.New("invalid country code")
	ErrDuplicateCountry   = errors.New("duplicate country code")
	ErrInvalidContinent   = errors.New("invalid continent")
	ErrInvalidSafetyLevel = errors.New("invalid safety level")
	ErrInvalidDirection   = errors.New("invalid navigation direction")
	ErrInvalidSection     = errors.New("invalid detail section")
	ErrCatalogNotLoaded   = errors.New("catalog not loaded")
	ErrNoDataSource       = errors.New("no data source configured")

	ErrInvalidVisitorID     = errors.New("invalid visitor ID")
	ErrUnknownFavoritesMode = errors.New("unknown favorites backend")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrUnknownDatabaseDriver           = errors.New("unknown database driver")

	ErrRecordNotFound = errors.New("record not found")
)
