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

// ItemRepo implements the storage.ItemRepository interface using PostgreSQL.
type ItemRepo struct {
	db *pgxpool.Pool
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(db *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{db: db}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description, category_id, price, stock, image`

func (r *ItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY category_id ASC, name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		slog.Error("Error querying all items", "error", err)
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		slog.Error("Error scanning items", "error", err)
		return nil, err
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, storage.ErrNotFound
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1;`
	row := r.db.QueryRow(ctx, query, id)

	var item models.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CategoryID, &item.Price, &item.Stock, &item.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		slog.Error("Error scanning item by ID", "id", id, "error", err)
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) GetByCategory(ctx context.Context, categoryID string) ([]models.Item, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return []models.Item{}, nil
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE category_id = $1 ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		slog.Error("Error querying items by category", "category_id", categoryID, "error", err)
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		slog.Error("Error scanning items by category", "category_id", categoryID, "error", err)
		return nil, err
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (r *ItemRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM items WHERE category_id = $1;`

	var count int
	if err := r.db.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		slog.Error("Error counting items by category", "category_id", categoryID, "error", err)
		return 0, err
	}
	return count, nil
}

func (r *ItemRepo) Create(ctx context.Context, item *models.Item) error {
	query := `INSERT INTO items (id, name, description, category_id, price, stock, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.CategoryID, item.Price, item.Stock, item.Image)
	if err != nil {
		slog.Error("Error creating item", "error", err)
		return err
	}
	return nil
}

func (r *ItemRepo) Update(ctx context.Context, id string, item *models.Item) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrNotFound
	}

	query := `UPDATE items SET name = $1, description = $2, category_id = $3, price = $4, stock = $5, image = $6
		WHERE id = $7;`

	cmdTag, err := r.db.Exec(ctx, query, item.Name, item.Description, item.CategoryID, item.Price, item.Stock, item.Image, id)
	if err != nil {
		slog.Error("Error updating item", "id", id, "error", err)
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrNotFound
	}

	query := `DELETE FROM items WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		slog.Error("Error deleting item", "id", id, "error", err)
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
