package errors

import "net/http"

var (
	ErrRegionNotFound = New(
		"REGION_NOT_FOUND",
		"Region not found",
		http.StatusNotFound,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session not found",
		http.StatusNotFound,
	)

	ErrInvalidView = New(
		"INVALID_VIEW",
		"Invalid view, expected one of: map, analytics, settings",
		http.StatusBadRequest,
	)

	ErrInvalidRiskLevel = New(
		"INVALID_RISK_LEVEL",
		"Invalid risk level, expected one of: high, medium, low",
		http.StatusBadRequest,
	)

	ErrInvalidBaseLayer = New(
		"INVALID_BASE_LAYER",
		"Invalid base layer, expected one of: street, satellite, terrain",
		http.StatusBadRequest,
	)

	ErrDataIntegrity = New(
		"DATA_INTEGRITY_ERROR",
		"Region catalog data is inconsistent",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
