// Package config loads the YAML settings shared by the owlfn tools.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
)

// Config is the top-level configuration file.
type Config struct {
	// Prefixes maps prefix names to namespaces. The empty name is the
	// default namespace.
	Prefixes map[string]string `yaml:"prefixes,omitempty"`
	Render   RenderConfig      `yaml:"render,omitempty"`
	Tree     TreeConfig        `yaml:"tree,omitempty"`
	Catalog  CatalogConfig     `yaml:"catalog,omitempty"`
}

type RenderConfig struct {
	Abbreviate           bool `yaml:"abbreviate"`
	KeepDocumentPrefixes bool `yaml:"keep-document-prefixes"`
}

type TreeConfig struct {
	Format  string `yaml:"format,omitempty"`
	Indent  int    `yaml:"indent,omitempty"`
	Trim    int    `yaml:"trim,omitempty"`
	NoSpans bool   `yaml:"no-spans,omitempty"`
}

type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

const DefaultCatalogPath = "owlfn.db"

func Default() *Config {
	options := common.DefaultPrintOptions()
	return &Config{
		Prefixes: map[string]string{},
		Render: RenderConfig{
			Abbreviate:           true,
			KeepDocumentPrefixes: true,
		},
		Tree: TreeConfig{
			Format: options.Format,
			Indent: options.Indent,
		},
		Catalog: CatalogConfig{Path: DefaultCatalogPath},
	}
}

// LoadConfig reads a YAML file. Settings missing from the file keep their
// defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfigFromString(string(data))
}

func LoadConfigFromString(yamlContent string) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	for _, name := range c.prefixNames() {
		if !curie.IsPrefixName(name) {
			return fmt.Errorf("invalid prefix name '%s'", name)
		}
		if c.Prefixes[name] == "" {
			return fmt.Errorf("empty namespace for prefix '%s'", name)
		}
	}
	if _, err := common.PickPrintFunc(c.Tree.Format); err != nil {
		return fmt.Errorf("tree: %w", err)
	}
	if c.Tree.Indent < 0 || c.Tree.Trim < 0 {
		return fmt.Errorf("tree: indent and trim must not be negative")
	}
	return nil
}

func (c *Config) prefixNames() []string {
	names := make([]string, 0, len(c.Prefixes))
	for name := range c.Prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrefixMapping builds the mapping declared by the configuration.
func (c *Config) PrefixMapping() (*curie.PrefixMapping, error) {
	mapping := curie.NewPrefixMapping()
	for _, name := range c.prefixNames() {
		if err := mapping.AddPrefix(name, c.Prefixes[name]); err != nil {
			return nil, err
		}
	}
	return mapping, nil
}

// RenderPrefixes chooses the prefixes used to write a document that declared
// the given ones. It returns nil when IRIs are not to be abbreviated.
// Configured prefixes never replace a name the document already binds.
func (c *Config) RenderPrefixes(document *curie.PrefixMapping) (*curie.PrefixMapping, error) {
	if !c.Render.Abbreviate {
		return nil, nil
	}
	mapping := curie.NewPrefixMapping()
	if c.Render.KeepDocumentPrefixes && document != nil {
		mapping = document.Clone()
	}
	for _, name := range c.prefixNames() {
		if _, bound := mapping.Namespace(name); bound {
			continue
		}
		if err := mapping.AddPrefix(name, c.Prefixes[name]); err != nil {
			return nil, err
		}
	}
	return mapping, nil
}

// PrintOptions returns the tree printing settings.
func (c *Config) PrintOptions() *common.PrintOptions {
	return &common.PrintOptions{
		Format:            c.Tree.Format,
		Indent:            c.Tree.Indent,
		IncludeSpans:      !c.Tree.NoSpans,
		TrimTokenOnOutput: c.Tree.Trim,
	}
}
