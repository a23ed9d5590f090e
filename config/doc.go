// Package config provides configuration loading and validation for sqlbridge.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (SQLBRIDGE_ prefix)
//  4. CLI flags
//
// Without explicit files, ./sqlbridge.yaml is read when present.
//
// # Usage
//
//	cfg, err := config.Load([]string{"sqlbridge.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	desc, err := cfg.Database.Descriptor()
//
// # Environment Variables
//
// All config keys map to environment variables with SQLBRIDGE_ prefix:
//   - database.connection → SQLBRIDGE_DATABASE_CONNECTION
//   - database.password → SQLBRIDGE_DATABASE_PASSWORD
//   - output.format → SQLBRIDGE_OUTPUT_FORMAT
//
// # Validation
//
// Configuration is validated using struct tags:
//   - database.connection is required
//   - query.limit must be at least 1
//   - output.format must be human, json, or yaml
//   - log.level must be debug, info, warn, or error
package config
