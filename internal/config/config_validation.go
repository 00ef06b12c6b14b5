// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/golang-jwt/jwt/v5"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.AccessTokenExpireMinutes <= 0 {
		return ErrInvalidAuthConfigs
	}

	if jwt.GetSigningMethod(cfg.Auth.TokenAlgorithm) == nil {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
