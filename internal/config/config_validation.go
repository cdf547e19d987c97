// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN and both token signing secrets are hard requirements:
// without them the process cannot do anything useful, so startup aborts.
// The two secrets must also differ — signing access and refresh tokens with
// the same key would let one token kind be replayed as the other.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.AccessTokenSecret == "" || cfg.App.RefreshTokenSecret == "" {
		return ErrMissingTokenSecrets
	}

	if cfg.App.AccessTokenSecret == cfg.App.RefreshTokenSecret {
		return ErrIdenticalTokenSecrets
	}

	if cfg.App.AccessTokenTTL <= 0 || cfg.App.RefreshTokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}

	if cfg.App.AccessTokenTTL >= cfg.App.RefreshTokenTTL {
		return ErrInvalidTokenTTL
	}

	return nil
}
