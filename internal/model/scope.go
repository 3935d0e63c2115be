package model

// Scope carries the verified identity of the caller. It is built by the auth
// middleware from a validated token and injected into every use case and tool
// execution; nothing downstream re-verifies identity.
type Scope struct {
	UserID string
	Email  string
	Name   string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
