//go:build saml

package httpserver

import (
	"github.com/edi-wallet/core/pkg/saml"
)

// SAMLService is the actual SAML service when SAML is enabled
type SAMLService = *saml.Service
