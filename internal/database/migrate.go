package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/models"
)

// RunMigrations creates or updates the schema and seeds the immutable
// template catalog.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Settings{},
		&models.Template{},
		&models.Project{},
		&models.Skill{},
		&models.TimelineEntry{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.Comment{},
		&models.VisitorMessage{},
		&models.Analytics{},
	); err != nil {
		return err
	}

	return seedTemplates(db)
}

var defaultTemplates = []models.Template{
	{ID: "classic", Name: "Classic", Layout: "single-column"},
	{ID: "modern", Name: "Modern", Layout: "two-column"},
	{ID: "minimal", Name: "Minimal", Layout: "single-column"},
	{ID: "showcase", Name: "Showcase", Layout: "grid"},
}

func seedTemplates(db *gorm.DB) error {
	for _, tpl := range defaultTemplates {
		var existing models.Template
		err := db.First(&existing, "id = ?", tpl.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&tpl).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
