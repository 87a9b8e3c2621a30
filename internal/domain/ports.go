package domain

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

import "context"

// PriceGraphFetcher issues one authenticated price graph query.
type PriceGraphFetcher interface {
	// Fetch sends the query and returns the normalized table.
	// Non-200 answers surface as *RemoteServiceError.
	Fetch(ctx context.Context, query PriceGraphQuery, credential EndpointCredential) (PriceGraphTable, error)
}

// CredentialProvider looks up the bearer credential of a named endpoint.
type CredentialProvider interface {
	// CredentialFor returns *NotAuthenticatedError before readiness or for unknown names.
	CredentialFor(endpointName string) (EndpointCredential, error)
}

// IdentityTokenSource issues identity tokens for a target audience (the endpoint URL).
type IdentityTokenSource interface {
	IDToken(ctx context.Context, audience string) (string, error)
}

// AirportLookup is the read-only view of the airport reference data.
type AirportLookup interface {
	// LookupByCode finds an airport by IATA code.
	LookupByCode(code string) (Airport, bool)

	// All returns every airport in load order.
	All() []Airport
}
