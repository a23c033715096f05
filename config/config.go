// Package config is for CLI-wide settings unmarshalled from Viper (see
// cmd/root.go for the flag bindings).
package config

import (
	"github.com/spf13/viper"
)

// Flags mirrors every command-line flag adserr accepts. Fields are
// populated from Viper, which in turn sources them from the bound pflag
// values.
type Flags struct {
	Strict bool `mapstructure:"strict"`

	IntermediateFile string `mapstructure:"intermediate_file"`
	Format           string `mapstructure:"format"`

	CoverageBias       float64 `mapstructure:"coverage_bias"`
	PhysicalRedundancy float64 `mapstructure:"physical_redundancy"`
	SequencingDepth    float64 `mapstructure:"sequencing_depth"`
	ReadLength         int     `mapstructure:"read_length"`

	Seed int64 `mapstructure:"seed"`

	NoAdapter bool `mapstructure:"no_adapter"`
	NoPadTrim bool `mapstructure:"no_padtrim"`
}

// FromViper decodes the currently bound flag values into a Flags value.
func FromViper() (Flags, error) {
	var f Flags
	if err := viper.Unmarshal(&f); err != nil {
		return Flags{}, err
	}
	return f, nil
}
