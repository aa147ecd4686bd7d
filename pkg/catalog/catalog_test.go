package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicery/owlfn/pkg/functional"
	"github.com/spicery/owlfn/pkg/owl"
)

const pizza = `Prefix(:=<http://example.com/pizza#>)
Prefix(rdfs:=<http://www.w3.org/2000/01/rdf-schema#>)
Ontology(<http://example.com/pizza>
  Import(<http://example.com/food>)
  Annotation(rdfs:comment "Pizzas")
  Declaration(Class(:Pizza))
  Declaration(Class(:Topping))
  SubClassOf(Annotation(rdfs:comment "every pizza has a topping") :Pizza ObjectSomeValuesFrom(:hasTopping :Topping))
  DisjointClasses(:Pizza :Topping)
)`

func openCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMigration(t *testing.T) {
	c := openCatalog(t)
	upToDate, err := c.CheckMigration()
	require.NoError(t, err)
	assert.False(t, upToDate)

	require.NoError(t, c.Migrate())
	upToDate, err = c.CheckMigration()
	require.NoError(t, err)
	assert.True(t, upToDate)
}

func TestStoreAndLoad(t *testing.T) {
	c := openCatalog(t)
	require.NoError(t, c.Migrate())

	ontology, prefixes, err := functional.ParseDocument(pizza, nil)
	require.NoError(t, err)
	require.NoError(t, c.Store("pizza", ontology, prefixes))

	loaded, loadedPrefixes, err := c.Load("pizza")
	require.NoError(t, err)
	assert.True(t, ontology.Equal(loaded))
	assert.Equal(t, prefixes.Mappings(), loadedPrefixes.Mappings())

	counts, err := c.KindCounts("pizza")
	require.NoError(t, err)
	assert.Equal(t, map[owl.AxiomKind]int{
		owl.KindImport:             1,
		owl.KindOntologyAnnotation: 1,
		owl.KindDeclaration:        2,
		owl.KindSubClassOf:         1,
		owl.KindDisjointClasses:    1,
	}, counts)
}

func TestStoreReplaces(t *testing.T) {
	c := openCatalog(t)
	require.NoError(t, c.Migrate())

	ontology, prefixes, err := functional.ParseDocument(pizza, nil)
	require.NoError(t, err)
	require.NoError(t, c.Store("pizza", ontology, prefixes))

	empty, _, err := functional.ParseDocument("Ontology()", nil)
	require.NoError(t, err)
	require.NoError(t, c.Store("pizza", empty, nil))

	loaded, loadedPrefixes, err := c.Load("pizza")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
	assert.Nil(t, loaded.ID.IRI)
	assert.Equal(t, 0, loadedPrefixes.Len())
}

func TestListAndDelete(t *testing.T) {
	c := openCatalog(t)
	require.NoError(t, c.Migrate())

	ontology, prefixes, err := functional.ParseDocument(pizza, nil)
	require.NoError(t, err)
	require.NoError(t, c.Store("pizza", ontology, prefixes))
	require.NoError(t, c.Store("empty", owl.NewOntology(), nil))

	summaries, err := c.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "empty", summaries[0].Name)
	assert.Nil(t, summaries[0].OntologyIRI)
	assert.Equal(t, "pizza", summaries[1].Name)
	require.NotNil(t, summaries[1].OntologyIRI)
	assert.Equal(t, owl.IRI("http://example.com/pizza"), *summaries[1].OntologyIRI)
	assert.Equal(t, 6, summaries[1].Axioms)

	deleted, err := c.Delete("pizza")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = c.Delete("pizza")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, _, err = c.Load("pizza")
	assert.True(t, errors.Is(err, ErrNotFound))
}
