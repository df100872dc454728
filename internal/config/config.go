// Package config loads the CLI configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete tool configuration.
type Config struct {
	Parser Parser
	Export Export
	Sites  []Site
}

// Parser contains parsing-level settings.
type Parser struct {
	HeroAlias string `hcl:"hero_alias,optional"`
	Workers   int    `hcl:"workers,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// Export controls record export.
type Export struct {
	Format    string `hcl:"format,optional"`
	OutputDir string `hcl:"output_dir,optional"`
}

// Site overrides per-site behavior, keyed by site name.
type Site struct {
	Name      string `hcl:"name,label"`
	HeroAlias string `hcl:"hero_alias,optional"`
}

// fileSchema is the HCL shape of the config file. Blocks are pointers so
// a file may carry any subset; absent blocks keep their defaults.
type fileSchema struct {
	Parser *Parser `hcl:"parser,block"`
	Export *Export `hcl:"export,block"`
	Sites  []Site  `hcl:"site,block"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Parser: Parser{
			Workers:  1,
			LogLevel: "info",
		},
		Export: Export{
			Format:    "toml",
			OutputDir: ".",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error; defaults apply.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file: %s", diags.Error())
	}

	config := Default()
	if raw.Parser != nil {
		config.Parser = *raw.Parser
		if config.Parser.Workers == 0 {
			config.Parser.Workers = 1
		}
		if config.Parser.LogLevel == "" {
			config.Parser.LogLevel = "info"
		}
	}
	if raw.Export != nil {
		config.Export = *raw.Export
		if config.Export.Format == "" {
			config.Export.Format = "toml"
		}
		if config.Export.OutputDir == "" {
			config.Export.OutputDir = "."
		}
	}
	config.Sites = raw.Sites

	if config.Parser.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", config.Parser.Workers)
	}
	return config, nil
}

// HeroAliasFor returns the per-site hero alias override, falling back to
// the global one.
func (c *Config) HeroAliasFor(site string) string {
	for _, s := range c.Sites {
		if s.Name == site && s.HeroAlias != "" {
			return s.HeroAlias
		}
	}
	return c.Parser.HeroAlias
}
