package services

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-menu/models"
)

const menuItemColumns = `id, name, course, description, price, restaurant_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Course, &m.Description, &m.Price, &m.RestaurantID)
	return m, err
}

// CreateMenuItem adds an item to an existing restaurant.
func (r *Repository) CreateMenuItem(ctx context.Context, restaurantID int64, f models.MenuItemFields) (*models.MenuItem, error) {
	item := models.NewMenuItem(restaurantID, f)
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM restaurants WHERE id = $1`, restaurantID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: "restaurant", ID: restaurantID}
		}
		if err != nil {
			return err
		}
		if err := item.Validate(); err != nil {
			return validationErr(err)
		}
		return tx.QueryRowContext(ctx, `
			INSERT INTO menu_items (name, course, description, price, restaurant_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.Name, item.Course, item.Description, item.Price, item.RestaurantID,
		).Scan(&item.ID)
	})
	if err != nil {
		return nil, storageErr("create menu item", err)
	}
	return &item, nil
}

// GetMenuItem returns a menu item by id.
func (r *Repository) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	m, err := scanMenuItem(r.db.QueryRowContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "menu item", ID: id}
		}
		return nil, storageErr("get menu item", err)
	}
	return &m, nil
}

// GetMenuItemForRestaurant is GetMenuItem restricted to one restaurant's menu.
// An item owned by another restaurant is reported as not found.
func (r *Repository) GetMenuItemForRestaurant(ctx context.Context, restaurantID, id int64) (*models.MenuItem, error) {
	m, err := r.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.RestaurantID != restaurantID {
		return nil, &NotFoundError{Entity: "menu item", ID: id}
	}
	return m, nil
}

// ListMenuItemsByRestaurant returns a restaurant's items ordered by id. A
// restaurant without items, or an unknown id, yields an empty slice.
func (r *Repository) ListMenuItemsByRestaurant(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id`,
		restaurantID,
	)
	if err != nil {
		return nil, storageErr("list menu items", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, storageErr("list menu items", err)
		}
		items = append(items, m)
	}
	return items, storageErr("list menu items", rows.Err())
}

// CountMenuItems returns how many items a restaurant has.
func (r *Repository) CountMenuItems(ctx context.Context, restaurantID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items WHERE restaurant_id = $1`, restaurantID).Scan(&n)
	if err != nil {
		return 0, storageErr("count menu items", err)
	}
	return n, nil
}

// UpdateMenuItem overwrites the fields that are non-empty in f. All changed
// fields are written in one statement or not at all.
func (r *Repository) UpdateMenuItem(ctx context.Context, id int64, f models.MenuItemFields) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		var err error
		item, err = scanMenuItem(tx.QueryRowContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`+r.db.LockClause(), id))
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: "menu item", ID: id}
		}
		if err != nil {
			return err
		}
		if !item.Apply(f) {
			return nil
		}
		if err := item.Validate(); err != nil {
			return validationErr(err)
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE menu_items
			SET name = $1, course = $2, description = $3, price = $4
			WHERE id = $5`,
			item.Name, item.Course, item.Description, item.Price, id,
		)
		return err
	})
	if err != nil {
		return nil, storageErr("update menu item", err)
	}
	return &item, nil
}

// DeleteMenuItem removes a single menu item.
func (r *Repository) DeleteMenuItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete menu item", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete menu item", err)
	}
	if n == 0 {
		return &NotFoundError{Entity: "menu item", ID: id}
	}
	return nil
}
