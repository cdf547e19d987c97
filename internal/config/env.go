// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping comes from the
// `env` and `envPrefix` tags on [StructuredConfig] and its nested sections.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
