package flexserver

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/postgresql/armpostgresqlflexibleservers/v4"
)

// Server is the subset of a flexible server resource exposed to tools.
// Every field is optional; ARM omits values it does not know.
type Server struct {
	Name                *string
	Location            *string
	Version             *string
	SKUName             *string
	StorageSizeGB       *int32
	BackupRetentionDays *int32
	GeoRedundantBackup  *string
}

// Configuration is a single server parameter.
type Configuration struct {
	Name  *string
	Value *string
}

// ServerName derives the flexible server name from a host name,
// e.g. "myserver.postgres.database.azure.com" becomes "myserver".
func ServerName(host string) string {
	name, _, _ := strings.Cut(host, ".")
	return name
}

func serverFromARM(s *armpostgresqlflexibleservers.Server) *Server {
	out := &Server{
		Name:     s.Name,
		Location: s.Location,
	}
	if s.SKU != nil {
		out.SKUName = s.SKU.Name
	}

	props := s.Properties
	if props == nil {
		return out
	}
	if props.Version != nil {
		out.Version = stringPtr(string(*props.Version))
	}
	if props.Storage != nil {
		out.StorageSizeGB = props.Storage.StorageSizeGB
	}
	if props.Backup != nil {
		out.BackupRetentionDays = props.Backup.BackupRetentionDays
		if props.Backup.GeoRedundantBackup != nil {
			out.GeoRedundantBackup = stringPtr(string(*props.Backup.GeoRedundantBackup))
		}
	}
	return out
}

func configurationFromARM(c *armpostgresqlflexibleservers.Configuration) *Configuration {
	out := &Configuration{Name: c.Name}
	if c.Properties != nil {
		out.Value = c.Properties.Value
	}
	return out
}

func stringPtr(s string) *string {
	return &s
}
