package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"recipe-suggester/internal/pkg/common"
)

// SQLiteStore 以 SQLite 為後端的儲存，跨重啟保留資料
// 清單型欄位以 JSON 文字存放
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS recipes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	ingredients   TEXT NOT NULL,
	instructions  TEXT NOT NULL,
	cuisine       TEXT NOT NULL DEFAULT '',
	calories      INTEGER NOT NULL DEFAULT 0,
	cook_time     TEXT NOT NULL DEFAULT '',
	image_url     TEXT NOT NULL DEFAULT '',
	chef_note     TEXT NOT NULL DEFAULT '',
	dietary_flags TEXT NOT NULL DEFAULT '{}',
	saved         INTEGER NOT NULL DEFAULT 0
);
`

// NewSQLiteStore 開啟資料庫並建立資料表
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// modernc 驅動不支援多連線同時寫入
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// CreateRecipe 寫入食譜並配發 ID
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe common.Recipe) (common.Recipe, error) {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to marshal instructions: %w", err)
	}
	flags, err := json.Marshal(recipe.DietaryFlags)
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to marshal dietary flags: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes
			(title, description, ingredients, instructions, cuisine,
			 calories, cook_time, image_url, chef_note, dietary_flags, saved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.Title, recipe.Description, string(ingredients), string(instructions),
		recipe.Cuisine, recipe.Calories, recipe.CookTime, recipe.ImageURL,
		recipe.ChefNote, string(flags), boolToInt(recipe.Saved),
	)
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to insert recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to read inserted id: %w", err)
	}
	recipe.ID = int(id)
	return recipe, nil
}

// GetRecipe 依 ID 取食譜
func (s *SQLiteStore) GetRecipe(ctx context.Context, id int) (common.Recipe, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)
	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return common.Recipe{}, common.ErrRecipeNotFound
	}
	return recipe, err
}

// ListRecipes 依 ID 序回傳所有食譜
func (s *SQLiteStore) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	return s.queryRecipes(ctx, selectColumns+" ORDER BY id")
}

// SavedRecipes 依 ID 序回傳已儲存的食譜
func (s *SQLiteStore) SavedRecipes(ctx context.Context) ([]common.Recipe, error) {
	return s.queryRecipes(ctx, selectColumns+" WHERE saved = 1 ORDER BY id")
}

// SaveRecipe 標記為已儲存，冪等
func (s *SQLiteStore) SaveRecipe(ctx context.Context, id int) (common.Recipe, error) {
	result, err := s.db.ExecContext(ctx, "UPDATE recipes SET saved = 1 WHERE id = ?", id)
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to save recipe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return common.Recipe{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return common.Recipe{}, common.ErrRecipeNotFound
	}
	return s.GetRecipe(ctx, id)
}

// RemoveSavedRecipe 取消儲存標記，冪等
// 不存在的 id 視為已取消，不回報錯誤
func (s *SQLiteStore) RemoveSavedRecipe(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, "UPDATE recipes SET saved = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to unsave recipe: %w", err)
	}
	return nil
}

// Close 關閉資料庫
func (s *SQLiteStore) Close() error { return s.db.Close() }

const selectColumns = `
SELECT id, title, description, ingredients, instructions, cuisine,
       calories, cook_time, image_url, chef_note, dietary_flags, saved
FROM recipes`

func (s *SQLiteStore) queryRecipes(ctx context.Context, query string, args ...interface{}) ([]common.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []common.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	if recipes == nil {
		recipes = []common.Recipe{}
	}
	return recipes, nil
}

// scanner 讓單列與多列查詢共用掃描邏輯
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(row scanner) (common.Recipe, error) {
	var (
		recipe       common.Recipe
		ingredients  string
		instructions string
		flags        string
		saved        int
	)
	err := row.Scan(
		&recipe.ID, &recipe.Title, &recipe.Description, &ingredients,
		&instructions, &recipe.Cuisine, &recipe.Calories, &recipe.CookTime,
		&recipe.ImageURL, &recipe.ChefNote, &flags, &saved,
	)
	if err != nil {
		return common.Recipe{}, err
	}

	if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return common.Recipe{}, fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(instructions), &recipe.Instructions); err != nil {
		return common.Recipe{}, fmt.Errorf("failed to unmarshal instructions: %w", err)
	}
	if err := json.Unmarshal([]byte(flags), &recipe.DietaryFlags); err != nil {
		return common.Recipe{}, fmt.Errorf("failed to unmarshal dietary flags: %w", err)
	}
	recipe.Saved = saved != 0
	return recipe, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
