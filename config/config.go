package config

import "path/filepath"

// AppConfig holds the application configuration.
type AppConfig struct {
	DataDir      string
	UploadDir    string
	RedisAddress string
	Addr         string
}

// UsersFile is the ASHA worker account table path.
func (c *AppConfig) UsersFile() string {
	return filepath.Join(c.DataDir, "users.csv")
}

// AdminFile is the administrator account table path.
func (c *AppConfig) AdminFile() string {
	return filepath.Join(c.DataDir, "admin.csv")
}

// ReportsFile is the visit record table path.
func (c *AppConfig) ReportsFile() string {
	return filepath.Join(c.DataDir, "reports.csv")
}
