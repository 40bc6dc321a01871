// Package config loads settings for the syncctl command-line tool.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file passed with --config.
//  3. Command flags, applied by the cli package on top of the result.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "secret_key": "secretKey",
//	  "request_timeout": "15s"
//	}
package config
