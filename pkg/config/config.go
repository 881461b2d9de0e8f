// Package config loads barrelint.yaml and exposes the configuration the
// classifier and rule set consume: per-rule flags, the recognized pattern
// token sets, and the default scan root.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/layers"
	"github.com/teklund/barrelint/pkg/rules"
)

// DefaultFile is the conventional configuration file name.
const DefaultFile = "barrelint.yaml"

// Config represents barrelint.yaml.
type Config struct {
	// Root is the default source root scanned by the batch commands.
	Root     string         `yaml:"root"`
	Rules    RulesConfig    `yaml:"rules"`
	Patterns PatternsConfig `yaml:"patterns"`
}

// RulesConfig holds per-rule enable flags.
type RulesConfig struct {
	InternalImport      bool `yaml:"internal_import"`
	SelfBarrelImport    bool `yaml:"self_barrel_import"`
	CrossFeatureExport  bool `yaml:"cross_feature_export"`
	ImproperLayerImport bool `yaml:"improper_layer_import"`
}

// PatternsConfig holds the recognized token sets. Empty lists fall back to
// the classifier defaults, so a config file can override selectively.
type PatternsConfig struct {
	InternalTokens     []string       `yaml:"internal_tokens"`
	DataTokens         []string       `yaml:"data_tokens"`
	DomainTokens       []string       `yaml:"domain_tokens"`
	PresentationTokens []string       `yaml:"presentation_tokens"`
	LayerSuffixes      []SuffixConfig `yaml:"layer_suffixes"`
	ExcludeDirs        []string       `yaml:"exclude_dirs"`
	ExcludeSuffixes    []string       `yaml:"exclude_suffixes"`
	SourceExtension    string         `yaml:"source_extension"`
}

// SuffixConfig maps one barrel file-name suffix to a layer name.
type SuffixConfig struct {
	Suffix string `yaml:"suffix"`
	Layer  string `yaml:"layer"`
}

// Default returns the configuration used when no file is present: every
// rule enabled, conventional token sets, "lib" as the scan root.
func Default() *Config {
	opts := classifier.DefaultOptions()
	suffixes := make([]SuffixConfig, 0, len(opts.LayerSuffixes))
	for _, m := range opts.LayerSuffixes {
		suffixes = append(suffixes, SuffixConfig{Suffix: m.Suffix, Layer: m.Layer.String()})
	}
	return &Config{
		Root: "lib",
		Rules: RulesConfig{
			InternalImport:      true,
			SelfBarrelImport:    true,
			CrossFeatureExport:  true,
			ImproperLayerImport: true,
		},
		Patterns: PatternsConfig{
			InternalTokens:     opts.InternalTokens,
			DataTokens:         opts.DataTokens,
			DomainTokens:       opts.DomainTokens,
			PresentationTokens: opts.PresentationTokens,
			LayerSuffixes:      suffixes,
			ExcludeDirs:        opts.ExcludeDirs,
			ExcludeSuffixes:    opts.ExcludeSuffixes,
			SourceExtension:    opts.SourceExt,
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults; fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays BARRELINT_* environment variables on the loaded
// configuration.
func applyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("BARRELINT")
	v.AutomaticEnv()

	if root := v.GetString("root"); root != "" {
		cfg.Root = root
	}
	if ext := v.GetString("source_extension"); ext != "" {
		cfg.Patterns.SourceExtension = ext
	}
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ClassifierOptions converts the pattern configuration into classifier
// options, falling back to defaults for empty sections.
func (c *Config) ClassifierOptions() classifier.Options {
	opts := classifier.DefaultOptions()
	p := c.Patterns

	if len(p.InternalTokens) > 0 {
		opts.InternalTokens = p.InternalTokens
	}
	if len(p.DataTokens) > 0 {
		opts.DataTokens = p.DataTokens
	}
	if len(p.DomainTokens) > 0 {
		opts.DomainTokens = p.DomainTokens
	}
	if len(p.PresentationTokens) > 0 {
		opts.PresentationTokens = p.PresentationTokens
	}
	if len(p.LayerSuffixes) > 0 {
		mappings := make([]classifier.SuffixMapping, 0, len(p.LayerSuffixes))
		for _, s := range p.LayerSuffixes {
			mappings = append(mappings, classifier.SuffixMapping{
				Suffix: s.Suffix,
				Layer:  layers.Parse(s.Layer),
			})
		}
		opts.LayerSuffixes = mappings
	}
	if len(p.ExcludeDirs) > 0 {
		opts.ExcludeDirs = p.ExcludeDirs
	}
	if len(p.ExcludeSuffixes) > 0 {
		opts.ExcludeSuffixes = p.ExcludeSuffixes
	}
	if p.SourceExtension != "" {
		opts.SourceExt = p.SourceExtension
	}
	return opts
}

// RuleFlags converts the rule configuration into engine flags.
func (c *Config) RuleFlags() rules.Flags {
	return rules.Flags{
		InternalImport:      c.Rules.InternalImport,
		SelfBarrelImport:    c.Rules.SelfBarrelImport,
		CrossFeatureExport:  c.Rules.CrossFeatureExport,
		ImproperLayerImport: c.Rules.ImproperLayerImport,
	}
}
