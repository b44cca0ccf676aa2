// Package config loads client settings from a YAML file, a .env file and
// MWS_-prefixed environment variables, in increasing order of precedence.
//
// # Usage
//
//	var cfg client.Config
//	err := config.Load(&cfg, config.WithConfigFile("mws.yml"))
//
// Environment variables map onto nested keys by splitting on underscores:
// MWS_SELLER_ID sets seller_id and MWS_RETRY_MAX_ATTEMPTS sets
// retry.max_attempts. When the target implements Defaulter and Validator,
// defaults are applied and the result validated after unmarshalling.
package config
