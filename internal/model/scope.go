package model

// Scope carries the caller identity through usecases. Handlers resolve it
// from the request and pass it explicitly; nothing reads ambient user state.
type Scope struct {
	UserID string
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
