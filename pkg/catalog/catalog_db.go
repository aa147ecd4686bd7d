package catalog

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Document is one stored ontology.
type Document struct {
	Name        string `gorm:"primaryKey"`
	OntologyIRI *string
	VersionIRI  *string
}

// Prefix is a prefix declared by a stored document.
type Prefix struct {
	DocumentName string `gorm:"primaryKey;index"`
	Name         string `gorm:"primaryKey"`
	Namespace    string
}

// Axiom holds one annotated axiom in isolated canonical text, with full
// IRIs, so that it can be parsed back without the prefixes.
type Axiom struct {
	DocumentName string `gorm:"primaryKey;index"`
	Text         string `gorm:"primaryKey"`
	Kind         string `gorm:"index"`
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610150001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&Document{},
					&Prefix{},
					&Axiom{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&Axiom{},
					&Prefix{},
					&Document{},
				)
			},
		},
	}
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration reports whether the last known migration has been applied.
// A database that has never been migrated is simply out of date.
func CheckMigration(db *gorm.DB) (bool, error) {
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error
	if err != nil {
		return false, nil
	}

	migrations := getMigrations()
	if len(migrations) == 0 {
		return true, nil
	}
	return lastMigration == migrations[len(migrations)-1].ID, nil
}
