package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicery/owlfn/pkg/curie"
)

const sample = `
prefixes:
  "": http://example.com/
  owl: http://www.w3.org/2002/07/owl#
render:
  abbreviate: true
  keep-document-prefixes: false
tree:
  format: json
  trim: 10
catalog:
  path: /tmp/ontologies.db
`

func TestLoadConfigFromString(t *testing.T) {
	config, err := LoadConfigFromString(sample)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/", config.Prefixes[""])
	assert.False(t, config.Render.KeepDocumentPrefixes)
	assert.Equal(t, "json", config.Tree.Format)
	assert.Equal(t, 2, config.Tree.Indent)
	assert.Equal(t, "/tmp/ontologies.db", config.Catalog.Path)

	options := config.PrintOptions()
	assert.Equal(t, 10, options.TrimTokenOnOutput)
	assert.True(t, options.IncludeSpans)
}

func TestDefaults(t *testing.T) {
	config, err := LoadConfigFromString("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.True(t, config.Render.Abbreviate)
	assert.Equal(t, DefaultCatalogPath, config.Catalog.Path)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owlfn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, config.Prefixes, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []string{
		"prefixes:\n  1bad: http://example.com/\n",
		"prefixes:\n  ex: \"\"\n",
		"tree:\n  format: XML\n",
		"tree:\n  trim: -1\n",
		"render: [1, 2]\n",
	}
	for _, test := range tests {
		_, err := LoadConfigFromString(test)
		assert.Error(t, err, test)
	}
}

func TestPrefixMapping(t *testing.T) {
	config, err := LoadConfigFromString(sample)
	require.NoError(t, err)
	mapping, err := config.PrefixMapping()
	require.NoError(t, err)
	ns, ok := mapping.Default()
	require.True(t, ok)
	assert.Equal(t, "http://example.com/", ns)
	ns, ok = mapping.Namespace("owl")
	require.True(t, ok)
	assert.Equal(t, "http://www.w3.org/2002/07/owl#", ns)
}

func TestRenderPrefixes(t *testing.T) {
	document := curie.NewPrefixMapping()
	require.NoError(t, document.AddPrefix("owl", "http://example.com/not-owl#"))
	require.NoError(t, document.AddPrefix("doc", "http://example.com/doc#"))

	config := Default()
	config.Prefixes["owl"] = "http://www.w3.org/2002/07/owl#"
	config.Prefixes["xsd"] = "http://www.w3.org/2001/XMLSchema#"

	mapping, err := config.RenderPrefixes(document)
	require.NoError(t, err)
	ns, _ := mapping.Namespace("owl")
	assert.Equal(t, "http://example.com/not-owl#", ns)
	_, ok := mapping.Namespace("doc")
	assert.True(t, ok)
	_, ok = mapping.Namespace("xsd")
	assert.True(t, ok)
	assert.Equal(t, 2, document.Len())

	config.Render.KeepDocumentPrefixes = false
	mapping, err = config.RenderPrefixes(document)
	require.NoError(t, err)
	_, ok = mapping.Namespace("doc")
	assert.False(t, ok)

	config.Render.Abbreviate = false
	mapping, err = config.RenderPrefixes(document)
	require.NoError(t, err)
	assert.Nil(t, mapping)
}
