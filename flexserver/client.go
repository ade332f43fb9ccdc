// Package flexserver talks to the Azure Resource Manager API of
// Azure Database for PostgreSQL - Flexible Server.
package flexserver

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/postgresql/armpostgresqlflexibleservers/v4"
)

var (
	ErrSubscriptionRequired  = errors.New("subscription id is required")
	ErrResourceGroupRequired = errors.New("resource group is required")
)

// Client reads server resources from a single resource group.
type Client struct {
	resourceGroup  string
	servers        *armpostgresqlflexibleservers.ServersClient
	configurations *armpostgresqlflexibleservers.ConfigurationsClient
}

// NewClient builds a management client scoped to subscriptionID and resourceGroup.
// options may be nil.
func NewClient(subscriptionID, resourceGroup string, cred azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	if subscriptionID == "" {
		return nil, ErrSubscriptionRequired
	}
	if resourceGroup == "" {
		return nil, ErrResourceGroupRequired
	}

	factory, err := armpostgresqlflexibleservers.NewClientFactory(subscriptionID, cred, options)
	if err != nil {
		return nil, err
	}

	return &Client{
		resourceGroup:  resourceGroup,
		servers:        factory.NewServersClient(),
		configurations: factory.NewConfigurationsClient(),
	}, nil
}

// ResourceGroup returns the resource group every lookup is scoped to.
func (c *Client) ResourceGroup() string {
	return c.resourceGroup
}

// GetServer fetches a server by name. ARM errors are returned as-is.
func (c *Client) GetServer(ctx context.Context, serverName string) (*Server, error) {
	resp, err := c.servers.Get(ctx, c.resourceGroup, serverName, nil)
	if err != nil {
		return nil, err
	}
	return serverFromARM(&resp.Server), nil
}

// GetConfiguration fetches a single server parameter. ARM errors are returned as-is.
func (c *Client) GetConfiguration(ctx context.Context, serverName, name string) (*Configuration, error) {
	resp, err := c.configurations.Get(ctx, c.resourceGroup, serverName, name, nil)
	if err != nil {
		return nil, err
	}
	return configurationFromARM(&resp.Configuration), nil
}
