//go:build !oidcrp

package httpserver

// OIDCRPService is a stub type when OIDC RP is not enabled
type OIDCRPService interface{}
