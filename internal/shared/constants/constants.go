package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyIdentityID = "identity_id"
	ContextKeyPersonID   = "person_id"
	ContextKeyRole       = "role"
	ContextKeySessionID  = "session_id"

	// Query parameters
	QueryParamSearch    = "q"
	QueryParamNext      = "next"
	QueryParamSortBy    = "sort_by"
	QueryParamSortOrder = "sort_order"
)
