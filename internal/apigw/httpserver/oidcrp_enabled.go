//go:build oidcrp

package httpserver

import (
	"github.com/edi-wallet/core/pkg/oidcrp"
)

// OIDCRPService is the actual OIDC RP service when OIDC RP is enabled
type OIDCRPService = *oidcrp.Service
