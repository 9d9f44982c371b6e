package postgres

import (
	"context"
	"errors"
	"log/slog"

	"inventory-app/internal/models"
	"inventory-app/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepo implements the storage.CategoryRepository interface using PostgreSQL.
type CategoryRepo struct {
	db *pgxpool.Pool
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Compile-time check to ensure CategoryRepo implements CategoryRepository
var _ storage.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		slog.Error("Error querying all categories", "error", err)
		return nil, err
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		slog.Error("Error scanning categories", "error", err)
		return nil, err
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	// A malformed id can never address a document.
	if _, err := uuid.Parse(id); err != nil {
		return nil, storage.ErrNotFound
	}

	query := `SELECT id, name, description FROM categories WHERE id = $1;`
	row := r.db.QueryRow(ctx, query, id)

	var category models.Category
	err := row.Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		slog.Error("Error scanning category by ID", "id", id, "error", err)
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `INSERT INTO categories (id, name, description) VALUES ($1, $2, $3);`

	_, err := r.db.Exec(ctx, query, category.ID, category.Name, category.Description)
	if err != nil {
		slog.Error("Error creating category", "error", err)
		return err
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, id string, category *models.Category) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrNotFound
	}

	query := `UPDATE categories SET name = $1, description = $2 WHERE id = $3;`

	cmdTag, err := r.db.Exec(ctx, query, category.Name, category.Description, id)
	if err != nil {
		slog.Error("Error updating category", "id", id, "error", err)
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrNotFound
	}

	query := `DELETE FROM categories WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		slog.Error("Error deleting category", "id", id, "error", err)
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
