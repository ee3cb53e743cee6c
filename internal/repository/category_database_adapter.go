package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	listCategoriesQuery     = `SELECT id, type FROM categories ORDER BY type ASC`
	getCategoryByIDQuery    = `SELECT id, type FROM categories WHERE id = :1`
	findCategoryByTypeQuery = `SELECT id, type FROM categories WHERE LOWER(type) = LOWER(:1) ORDER BY id ASC FETCH FIRST 1 ROWS ONLY`
	nextCategoryIDQuery     = `SELECT categories_seq.NEXTVAL FROM dual`
	insertCategoryQuery     = `INSERT INTO categories (id, type) VALUES (:1, :2)`
	updateCategoryQuery     = `UPDATE categories SET type = :1 WHERE id = :2`
	deleteCategoryQuery     = `DELETE FROM categories WHERE id = :1`
)

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// ListCategories returns all categories ordered by type
func (r *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var rows []models.Category
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, listCategoriesQuery); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.getOne(ctx, getCategoryByIDQuery, id)
}

func (r *CategoryDatabaseAdapter) FindCategoryByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	return r.getOne(ctx, findCategoryByTypeQuery, categoryType)
}

func (r *CategoryDatabaseAdapter) getOne(ctx context.Context, query string, arg interface{}) (*domain.Category, error) {
	var row models.Category
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return toDomainCategory(&row), nil
}

// SaveCategory draws the next id from categories_seq and inserts the row.
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	exec := GetExecutor(ctx, r.db)

	var id int64
	if err := exec.GetContext(ctx, &id, nextCategoryIDQuery); err != nil {
		return fmt.Errorf("allocate category id: %w", err)
	}
	if _, err := exec.ExecContext(ctx, insertCategoryQuery, id, category.Type); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

func (r *CategoryDatabaseAdapter) UpdateCategory(ctx context.Context, category *domain.Category) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, updateCategoryQuery, category.Type, category.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireRowsAffected(result)
}

func (r *CategoryDatabaseAdapter) DeleteCategory(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, deleteCategoryQuery, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRowsAffected(result)
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{ID: m.ID, Type: m.Type}
}
