package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/models"
)

// Columns shared by Search and GetListing. rating and platform_ids are
// correlated subqueries so each row carries its aggregate state without a
// GROUP BY over the whole join.
const gameListingColumns = `games.id AS game_id,
	games.title AS title,
	games.description AS description,
	games.genre_id AS genre_id,
	games.creator_id AS creator_id,
	users.name AS creator_name,
	games.price AS price,
	games.created_at AS created_at,
	(SELECT AVG(r.rating) FROM game_reviews r WHERE r.game_id = games.id) AS rating,
	(SELECT GROUP_CONCAT(gp.platform_id) FROM game_platforms gp WHERE gp.game_id = games.id) AS platform_ids`

// gameSortClauses maps the public sort keys to explicit ORDER BY clauses.
// Search appends an id tie-break so pagination is stable.
var gameSortClauses = map[string]string{
	"ALPHABETICAL_ASC":  "games.title ASC",
	"ALPHABETICAL_DESC": "games.title DESC",
	"PRICE_ASC":         "games.price ASC",
	"PRICE_DESC":        "games.price DESC",
	"RATING_ASC":        "rating ASC",
	"RATING_DESC":       "rating DESC",
	"CREATED_ASC":       "games.created_at ASC",
	"CREATED_DESC":      "games.created_at DESC",
}

const defaultGameSort = "CREATED_ASC"

// IsValidGameSort reports whether key is a recognised sort option.
func IsValidGameSort(key string) bool {
	_, ok := gameSortClauses[key]
	return ok
}

type GameRepository interface {
	Create(ctx context.Context, game *models.Game, platformIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	GetListing(ctx context.Context, id int64) (*models.GameListing, error)
	Search(ctx context.Context, filters dto.GameSearchFilters) ([]models.GameListing, int64, error)
	Update(ctx context.Context, game *models.Game) error
	ReplacePlatforms(ctx context.Context, gameID int64, platformIDs []int64) error
	Delete(ctx context.Context, id int64) error
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game, platformIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		return insertGamePlatforms(tx, game.ID, platformIDs)
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) GetListing(ctx context.Context, id int64) (*models.GameListing, error) {
	var l models.GameListing
	err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Select(gameListingColumns).
		Joins("JOIN users ON users.id = games.creator_id").
		Where("games.id = ?", id).
		Take(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Search assembles the filtered, sorted, paginated listing query and returns
// the page of rows plus the total match count before LIMIT/OFFSET.
func (r *gameRepository) Search(ctx context.Context, filters dto.GameSearchFilters) ([]models.GameListing, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Joins("JOIN users ON users.id = games.creator_id")

	if filters.Q != "" {
		like := "%" + filters.Q + "%"
		base = base.Where("games.title LIKE ? OR games.description LIKE ?", like, like)
	}
	if len(filters.GenreIDs) > 0 {
		base = base.Where("games.genre_id IN ?", filters.GenreIDs)
	}
	if len(filters.PlatformIDs) > 0 {
		base = base.Where(
			"EXISTS (SELECT 1 FROM game_platforms gp WHERE gp.game_id = games.id AND gp.platform_id IN ?)",
			filters.PlatformIDs)
	}
	if filters.MaxPrice != nil {
		// price=0 degenerates to free games only
		base = base.Where("games.price <= ?", *filters.MaxPrice)
	}
	if filters.CreatorID != nil {
		base = base.Where("games.creator_id = ?", *filters.CreatorID)
	}
	if filters.ReviewerID != nil {
		base = base.Where(
			"EXISTS (SELECT 1 FROM game_reviews r WHERE r.game_id = games.id AND r.user_id = ?)",
			*filters.ReviewerID)
	}
	if filters.OwnedBy != nil {
		base = base.Where(
			"EXISTS (SELECT 1 FROM owned o WHERE o.game_id = games.id AND o.user_id = ?)",
			*filters.OwnedBy)
	}
	if filters.WishlistedBy != nil {
		base = base.Where(
			"EXISTS (SELECT 1 FROM wishlist w WHERE w.game_id = games.id AND w.user_id = ?)",
			*filters.WishlistedBy)
	}

	// Total matches before pagination
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count games: %w", err)
	}

	sortKey := filters.SortBy
	if sortKey == "" {
		sortKey = defaultGameSort
	}
	clause, ok := gameSortClauses[sortKey]
	if !ok {
		return nil, 0, fmt.Errorf("unknown sort key %q", sortKey)
	}

	page := base.Select(gameListingColumns).
		Order(clause + ", games.id ASC").
		Offset(filters.StartIndex)
	if filters.Count != nil {
		page = page.Limit(*filters.Count)
	}

	var list []models.GameListing
	if err := page.Scan(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search games: %w", err)
	}
	return list, total, nil
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Save(game).Error; err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

// ReplacePlatforms swaps the full platform association set: delete-all then
// re-insert inside one transaction.
func (r *gameRepository) ReplacePlatforms(ctx context.Context, gameID int64, platformIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&models.GamePlatform{}).Error; err != nil {
			return err
		}
		return insertGamePlatforms(tx, gameID, platformIDs)
	})
	if err != nil {
		return fmt.Errorf("replace platforms: %w", err)
	}
	return nil
}

// insertGamePlatforms inserts join rows with the strategy the backend
// prefers: one multi-row statement on mysql, row-by-row on sqlite.
func insertGamePlatforms(tx *gorm.DB, gameID int64, platformIDs []int64) error {
	if len(platformIDs) == 0 {
		return nil
	}
	rows := make([]models.GamePlatform, 0, len(platformIDs))
	for _, pid := range platformIDs {
		rows = append(rows, models.GamePlatform{GameID: gameID, PlatformID: pid})
	}
	if tx.Dialector.Name() == "mysql" {
		return tx.Create(&rows).Error
	}
	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the game and cascades its wishlist, owned and platform join
// rows in a single transaction. Review checks belong to the service layer.
func (r *gameRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.WishlistEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.OwnedEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.GamePlatform{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Game{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func (r *gameRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Game{}).Where("title = ?", title)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
