package domain

import "time"

// PriceGraphEndpoint is the logical name of the price graph endpoint.
// It must be present in the endpoint configuration.
const PriceGraphEndpoint = "getPriceGraph"

// EndpointCredential is a bearer credential for one named endpoint.
// Credentials are never mutated; re-authentication replaces them wholesale.
type EndpointCredential struct {
	// EndpointName is the logical endpoint name (e.g., "getPriceGraph")
	EndpointName string

	// Token is the opaque bearer token, without the "Bearer " prefix
	Token string

	// ObtainedAt is when the token was issued to us
	ObtainedAt time.Time
}

// AuthorizationHeader returns the value for the HTTP Authorization header.
func (c EndpointCredential) AuthorizationHeader() string {
	return "Bearer " + c.Token
}
