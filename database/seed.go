package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/models"
)

var seedGenres = []string{
	"Action",
	"Adventure",
	"Puzzle",
	"Simulation",
	"Strategy",
	"RPG",
	"Sports",
	"Racing",
	"Horror",
	"Platformer",
}

var seedPlatforms = []string{
	"PC",
	"Mac",
	"Linux",
	"PlayStation",
	"Xbox",
	"Switch",
	"iOS",
	"Android",
}

// Seed inserts the fixture genre and platform catalogs when the tables are
// empty. Existing data is never touched.
func Seed(db *gorm.DB, logger *slog.Logger) error {
	var genreCount int64
	if err := db.Model(&models.Genre{}).Count(&genreCount).Error; err != nil {
		return fmt.Errorf("count genres: %w", err)
	}
	if genreCount == 0 {
		for _, name := range seedGenres {
			if err := db.Create(&models.Genre{Name: name}).Error; err != nil {
				return fmt.Errorf("seed genre %q: %w", name, err)
			}
		}
		logger.Info("Seeded genre catalog", "count", len(seedGenres))
	}

	var platformCount int64
	if err := db.Model(&models.Platform{}).Count(&platformCount).Error; err != nil {
		return fmt.Errorf("count platforms: %w", err)
	}
	if platformCount == 0 {
		for _, name := range seedPlatforms {
			if err := db.Create(&models.Platform{Name: name}).Error; err != nil {
				return fmt.Errorf("seed platform %q: %w", name, err)
			}
		}
		logger.Info("Seeded platform catalog", "count", len(seedPlatforms))
	}

	return nil
}
