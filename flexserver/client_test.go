package flexserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azure-postgresql-mcp/flexserver"
)

type staticCredential struct {
	token  string
	err    error
	scopes []string
}

func (c *staticCredential) GetToken(_ context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	c.scopes = opts.Scopes
	if c.err != nil {
		return azcore.AccessToken{}, c.err
	}
	return azcore.AccessToken{Token: c.token, ExpiresOn: time.Now().Add(time.Hour)}, nil
}

const serverPath = "/subscriptions/test-subscription-id/resourceGroups/test-resource-group" +
	"/providers/Microsoft.DBforPostgreSQL/flexibleServers/test-server"

func newTestClient(t *testing.T, handler http.HandlerFunc) *flexserver.Client {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	options := &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: cloud.Configuration{
				ActiveDirectoryAuthorityHost: srv.URL,
				Services: map[cloud.ServiceName]cloud.ServiceConfiguration{
					cloud.ResourceManager: {
						Audience: "https://management.azure.com",
						Endpoint: srv.URL,
					},
				},
			},
			Transport: srv.Client(),
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	}

	client, err := flexserver.NewClient("test-subscription-id", "test-resource-group", &staticCredential{token: "tok"}, options)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresScope(t *testing.T) {
	cred := &staticCredential{token: "tok"}

	_, err := flexserver.NewClient("", "rg", cred, nil)
	assert.ErrorIs(t, err, flexserver.ErrSubscriptionRequired)

	_, err = flexserver.NewClient("sub", "", cred, nil)
	assert.ErrorIs(t, err, flexserver.ErrResourceGroupRequired)

	client, err := flexserver.NewClient("sub", "rg", cred, nil)
	require.NoError(t, err)
	assert.Equal(t, "rg", client.ResourceGroup())
}

func TestClient_GetServer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasSuffix(r.URL.Path, serverPath) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "test-server",
			"location": "eastus",
			"sku": {"name": "Standard_D2s_v3", "tier": "GeneralPurpose"},
			"properties": {
				"version": "12",
				"storage": {"storageSizeGB": 100},
				"backup": {"backupRetentionDays": 7, "geoRedundantBackup": "Enabled"}
			}
		}`))
	})

	server, err := client.GetServer(context.Background(), "test-server")
	require.NoError(t, err)
	assert.Equal(t, "test-server", *server.Name)
	assert.Equal(t, "eastus", *server.Location)
	assert.Equal(t, "12", *server.Version)
	assert.Equal(t, "Standard_D2s_v3", *server.SKUName)
	assert.EqualValues(t, 100, *server.StorageSizeGB)
	assert.EqualValues(t, 7, *server.BackupRetentionDays)
	assert.Equal(t, "Enabled", *server.GeoRedundantBackup)
}

func TestClient_GetConfiguration(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, serverPath+"/configurations/max_connections") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "max_connections", "properties": {"value": "100", "source": "system-default"}}`))
	})

	cfg, err := client.GetConfiguration(context.Background(), "test-server", "max_connections")
	require.NoError(t, err)
	assert.Equal(t, "max_connections", *cfg.Name)
	assert.Equal(t, "100", *cfg.Value)
}

func TestClient_GetServer_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": "ResourceNotFound", "message": "server not found"}}`))
	})

	_, err := client.GetServer(context.Background(), "test-server")
	require.Error(t, err)

	var respErr *azcore.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
	assert.Equal(t, "ResourceNotFound", respErr.ErrorCode)
}

func TestTokenSource_Password(t *testing.T) {
	cred := &staticCredential{token: "aad-token"}

	password, err := flexserver.NewTokenSource(cred).Password(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "aad-token", password)
	assert.Equal(t, []string{flexserver.DatabaseTokenScope}, cred.scopes)
}

func TestTokenSource_PasswordError(t *testing.T) {
	cred := &staticCredential{err: errors.New("no credential available")}

	_, err := flexserver.NewTokenSource(cred).Password(context.Background())
	require.EqualError(t, err, "no credential available")
}
