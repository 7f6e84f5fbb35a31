package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindConfig binds a cobra command's flags into a fresh viper instance with
// REGIONPART_ environment-variable overrides, following the same
// flag/env/config-file precedence the retrieval pack's cobra+viper repos
// use. No config file is required; flags and environment variables are
// sufficient for every value the core accepts.
func bindConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("REGIONPART")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("regionpart: bind flags: %w", err)
	}

	return v, nil
}

// maxAccumulationFromConfig reads and validates the single tunable the core
// accepts. spec.md §6 states max_accumulation must be a positive integer;
// enforcing that here (rather than in package pipeline) keeps it a CLI
// usage error, not a core-package error.
func maxAccumulationFromConfig(v *viper.Viper) (int, error) {
	n := v.GetInt("max-accumulation")
	if n <= 0 {
		return 0, fmt.Errorf("regionpart: max-accumulation must be a positive integer, got %d", n)
	}

	return n, nil
}
