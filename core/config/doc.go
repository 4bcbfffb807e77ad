// Package config provides configuration management for repcomp.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Compare: defaults for comparison runs (workers, output directory, upload)
//   - Server: report HTTP server settings (port, API key)
//   - Database: MySQL connection details for the run history
//   - Storage: S3/MinIO credentials and bucket settings for report archival
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Compare.OutDir)
package config
