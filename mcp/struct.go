package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"azure-postgresql-mcp/flexserver"
)

type FlexMCPServer struct {
	server *server.MCPServer
	facade *ServerFacade
}

type serverConfigResponse struct {
	Server serverDocument `json:"server"`
}

type serverDocument struct {
	Name           *string        `json:"name"`
	Location       *string        `json:"location"`
	Version        *string        `json:"version"`
	SKU            *string        `json:"sku"`
	StorageProfile storageProfile `json:"storage_profile"`
}

type storageProfile struct {
	StorageSizeGB       *int32  `json:"storage_size_gb"`
	BackupRetentionDays *int32  `json:"backup_retention_days"`
	GeoRedundantBackup  *string `json:"geo_redundant_backup"`
}

type parameterResponse struct {
	Param *string `json:"param"`
	Value *string `json:"value"`
}

type queryResponse struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

func newServerDocument(s *flexserver.Server) serverDocument {
	return serverDocument{
		Name:     s.Name,
		Location: s.Location,
		Version:  s.Version,
		SKU:      s.SKUName,
		StorageProfile: storageProfile{
			StorageSizeGB:       s.StorageSizeGB,
			BackupRetentionDays: s.BackupRetentionDays,
			GeoRedundantBackup:  s.GeoRedundantBackup,
		},
	}
}
