package mcp

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azure-postgresql-mcp/flexserver"
)

// staticToken is an azcore.TokenCredential returning a fixed token.
type staticToken string

func (s staticToken) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: string(s), ExpiresOn: time.Now().Add(time.Hour)}, nil
}

type failingToken struct{ err error }

func (f failingToken) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{}, f.err
}

func TestStaticPassword(t *testing.T) {
	pw, err := StaticPassword("secret").Password(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
}

func TestPQConnector_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("database required", func(t *testing.T) {
		c := NewPQConnector(passwordConfig(), StaticPassword("secret"))
		db, err := c.Connect(ctx, "")
		assert.Nil(t, db)
		assert.ErrorIs(t, err, ErrDatabaseRequired)
	})

	t.Run("token failure", func(t *testing.T) {
		src := flexserver.NewTokenSource(failingToken{err: errors.New("no identity")})
		c := NewPQConnector(aadConfig(), src)

		db, err := c.Connect(ctx, "test_db")
		assert.Nil(t, db)
		require.ErrorIs(t, err, ErrPasswordUnavailable)
		assert.Contains(t, err.Error(), "no identity")
	})
}

func TestConnectorFunc(t *testing.T) {
	var got string
	c := ConnectorFunc(func(_ context.Context, database string) (*sql.DB, error) {
		got = database
		return nil, ErrConnectionFailed
	})

	_, err := c.Connect(context.Background(), "test_db")
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Equal(t, "test_db", got)
}
