// Package config provides configuration parsing for the mdc gallery
// server.
//
// The configuration is stored in mdc.yaml (or mdc.yml, or mdc.json) in
// the working directory. Every field is optional; missing fields take
// the defaults returned by New.
//
// # Configuration File Structure
//
//	server:
//	  host: localhost
//	  port: 3000
//	  readTimeout: 60s
//	  maxMessageSize: 65536
//	metrics:
//	  enabled: true
//	  path: /metrics
//	  namespace: mdc
//	tracing:
//	  enabled: false
//	log:
//	  level: info
//	  format: text
//	assets:
//	  mdcVersion: 14.0.0
//	  cdn: https://unpkg.com
//
// The same structure is accepted as JSON.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.Logger(os.Stderr)
package config
