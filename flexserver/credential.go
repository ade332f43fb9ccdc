package flexserver

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// DatabaseTokenScope is the Entra ID scope accepted as a PostgreSQL password.
const DatabaseTokenScope = "https://ossrdbms-aad.database.windows.net/.default"

// NewDefaultCredential returns the default Azure credential chain
// (environment, workload identity, managed identity, Azure CLI, ...).
func NewDefaultCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

// TokenSource hands out Entra ID access tokens to be used as database passwords.
type TokenSource struct {
	cred  azcore.TokenCredential
	scope string
}

// NewTokenSource returns a TokenSource requesting DatabaseTokenScope.
func NewTokenSource(cred azcore.TokenCredential) *TokenSource {
	return &TokenSource{cred: cred, scope: DatabaseTokenScope}
}

// Password fetches a token. azidentity credentials cache tokens until
// shortly before expiry.
func (s *TokenSource) Password(ctx context.Context) (string, error) {
	token, err := s.cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{s.scope},
	})
	if err != nil {
		return "", err
	}
	return token.Token, nil
}
