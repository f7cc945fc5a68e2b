package services

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-menu/models"
)

// CreateRestaurant validates and inserts a restaurant, returning it with its
// new id.
func (r *Repository) CreateRestaurant(ctx context.Context, name string) (*models.Restaurant, error) {
	rest := models.Restaurant{Name: name}
	if err := rest.Validate(); err != nil {
		return nil, validationErr(err)
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO restaurants (name) VALUES ($1)
		RETURNING id`,
		rest.Name,
	).Scan(&rest.ID)
	if err != nil {
		return nil, storageErr("create restaurant", err)
	}
	return &rest, nil
}

// GetRestaurant returns a restaurant by id.
func (r *Repository) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM restaurants WHERE id = $1`, id).Scan(&rest.ID, &rest.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "restaurant", ID: id}
		}
		return nil, storageErr("get restaurant", err)
	}
	return &rest, nil
}

// ListRestaurants returns all restaurants ordered by id.
func (r *Repository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM restaurants
		ORDER BY id`,
	)
	if err != nil {
		return nil, storageErr("list restaurants", err)
	}
	defer rows.Close()

	var res []models.Restaurant
	for rows.Next() {
		var rest models.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name); err != nil {
			return nil, storageErr("list restaurants", err)
		}
		res = append(res, rest)
	}
	return res, storageErr("list restaurants", rows.Err())
}

// UpdateRestaurant overwrites the fields that are non-empty in f. Empty fields
// are left as stored, so an update with only empty values is a no-op.
func (r *Repository) UpdateRestaurant(ctx context.Context, id int64, f models.RestaurantFields) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT id, name FROM restaurants WHERE id = $1`+r.db.LockClause(), id).Scan(&rest.ID, &rest.Name)
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: "restaurant", ID: id}
		}
		if err != nil {
			return err
		}
		if !rest.Apply(f) {
			return nil
		}
		if err := rest.Validate(); err != nil {
			return validationErr(err)
		}
		_, err = tx.ExecContext(ctx, `UPDATE restaurants SET name = $1 WHERE id = $2`, rest.Name, id)
		return err
	})
	if err != nil {
		return nil, storageErr("update restaurant", err)
	}
	return &rest, nil
}

// DeleteRestaurant removes a restaurant and, in the same transaction, every
// menu item it owns.
func (r *Repository) DeleteRestaurant(ctx context.Context, id int64) error {
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM menu_items WHERE restaurant_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &NotFoundError{Entity: "restaurant", ID: id}
		}
		return nil
	})
	return storageErr("delete restaurant", err)
}
