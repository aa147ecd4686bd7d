// Package catalog keeps parsed ontologies in a SQLite database.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/functional"
	"github.com/spicery/owlfn/pkg/owl"
)

// ErrNotFound is returned for a document name that is not in the catalog.
var ErrNotFound = errors.New("document not found")

// Catalog stores ontologies by name.
type Catalog struct {
	db  *gorm.DB
	log *slog.Logger
}

// Open opens or creates the database at path. A nil log uses slog.Default.
func Open(path string, log *slog.Logger) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{db: db, log: log.With("catalog", path)}, nil
}

func (c *Catalog) Migrate() error {
	return Migrate(c.db)
}

func (c *Catalog) CheckMigration() (bool, error) {
	return CheckMigration(c.db)
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func optionalIRI(iri *owl.IRI) *string {
	if iri == nil {
		return nil
	}
	s := string(*iri)
	return &s
}

func storedIRI(s *string) *owl.IRI {
	if s == nil {
		return nil
	}
	iri := owl.IRI(*s)
	return &iri
}

// Store saves ontology under name, replacing any document already there.
func (c *Catalog) Store(name string, ontology *owl.Ontology, prefixes *curie.PrefixMapping) error {
	document := Document{
		Name:        name,
		OntologyIRI: optionalIRI(ontology.ID.IRI),
		VersionIRI:  optionalIRI(ontology.ID.VersionIRI),
	}
	var prefixRows []Prefix
	if prefixes != nil {
		for _, mapping := range prefixes.Mappings() {
			prefixRows = append(prefixRows, Prefix{DocumentName: name, Name: mapping.Name, Namespace: mapping.Namespace})
		}
	}
	var axiomRows []Axiom
	for _, axiom := range ontology.Axioms() {
		text, err := functional.Format(axiom)
		if err != nil {
			return fmt.Errorf("failed to render %s axiom: %w", axiom.Kind(), err)
		}
		axiomRows = append(axiomRows, Axiom{DocumentName: name, Text: text, Kind: axiom.Kind().String()})
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteDocument(tx, name); err != nil {
			return err
		}
		if err := tx.Create(&document).Error; err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		if len(prefixRows) > 0 {
			if err := tx.Create(&prefixRows).Error; err != nil {
				return fmt.Errorf("failed to save prefixes: %w", err)
			}
		}
		if len(axiomRows) > 0 {
			if err := tx.CreateInBatches(&axiomRows, 200).Error; err != nil {
				return fmt.Errorf("failed to save axioms: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.log.Info("stored ontology", "name", name, "axioms", len(axiomRows), "prefixes", len(prefixRows))
	return nil
}

func deleteDocument(tx *gorm.DB, name string) error {
	if err := tx.Where("document_name = ?", name).Delete(&Axiom{}).Error; err != nil {
		return fmt.Errorf("failed to delete axioms: %w", err)
	}
	if err := tx.Where("document_name = ?", name).Delete(&Prefix{}).Error; err != nil {
		return fmt.Errorf("failed to delete prefixes: %w", err)
	}
	if err := tx.Where("name = ?", name).Delete(&Document{}).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// Load reads a stored document back, parsing each axiom again.
func (c *Catalog) Load(name string) (*owl.Ontology, *curie.PrefixMapping, error) {
	var document Document
	if err := c.db.First(&document, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	var prefixRows []Prefix
	if err := c.db.Where("document_name = ?", name).Order("name").Find(&prefixRows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to read prefixes: %w", err)
	}
	prefixes := curie.NewPrefixMapping()
	for _, row := range prefixRows {
		if err := prefixes.AddPrefix(row.Name, row.Namespace); err != nil {
			return nil, nil, err
		}
	}

	var axiomRows []Axiom
	if err := c.db.Where("document_name = ?", name).Find(&axiomRows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to read axioms: %w", err)
	}
	ontology := owl.NewOntology()
	ontology.ID.IRI = storedIRI(document.OntologyIRI)
	ontology.ID.VersionIRI = storedIRI(document.VersionIRI)
	build := owl.NewBuild()
	for _, row := range axiomRows {
		axiom, err := parseAxiom(row, functional.NewContext(build, nil))
		if err != nil {
			return nil, nil, fmt.Errorf("stored axiom '%s': %w", row.Text, err)
		}
		ontology.Insert(axiom)
	}
	c.log.Debug("loaded ontology", "name", name, "axioms", ontology.Len())
	return ontology, prefixes, nil
}

// parseAxiom reads a stored row. Imports and ontology annotations are not
// axioms of the grammar and have their own productions.
func parseAxiom(row Axiom, ctx *functional.Context) (owl.AnnotatedAxiom, error) {
	switch row.Kind {
	case owl.KindImport.String():
		imp, err := functional.ParseImport(row.Text, ctx)
		return owl.AnnotatedAxiom{Axiom: imp}, err
	case owl.KindOntologyAnnotation.String():
		annotation, err := functional.ParseAnnotation(row.Text, ctx)
		return owl.AnnotatedAxiom{Axiom: owl.OntologyAnnotation{Annotation: annotation}}, err
	default:
		return functional.ParseAnnotatedAxiom(row.Text, ctx)
	}
}

// Summary describes one stored document.
type Summary struct {
	Name        string
	OntologyIRI *owl.IRI
	Axioms      int
}

// List describes every stored document, ordered by name.
func (c *Catalog) List() ([]Summary, error) {
	var documents []Document
	if err := c.db.Order("name").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	summaries := make([]Summary, 0, len(documents))
	for _, document := range documents {
		var count int64
		if err := c.db.Model(&Axiom{}).Where("document_name = ?", document.Name).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count axioms: %w", err)
		}
		summaries = append(summaries, Summary{
			Name:        document.Name,
			OntologyIRI: storedIRI(document.OntologyIRI),
			Axioms:      int(count),
		})
	}
	return summaries, nil
}

// KindCounts tallies the stored axioms of a document by kind.
func (c *Catalog) KindCounts(name string) (map[owl.AxiomKind]int, error) {
	var rows []struct {
		Kind  string
		Count int
	}
	err := c.db.Model(&Axiom{}).
		Select("kind, count(*) as count").
		Where("document_name = ?", name).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count axioms: %w", err)
	}
	counts := map[owl.AxiomKind]int{}
	for _, row := range rows {
		kind, ok := owl.AxiomKindFromString(row.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown axiom kind '%s'", row.Kind)
		}
		counts[kind] = row.Count
	}
	return counts, nil
}

// Delete removes a document and reports whether it existed.
func (c *Catalog) Delete(name string) (bool, error) {
	var count int64
	if err := c.db.Model(&Document{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to find document: %w", err)
	}
	if count == 0 {
		return false, nil
	}
	if err := c.db.Transaction(func(tx *gorm.DB) error { return deleteDocument(tx, name) }); err != nil {
		return false, err
	}
	c.log.Info("deleted ontology", "name", name)
	return true, nil
}
