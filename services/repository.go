package services

import (
	"errors"

	"restaurant-menu/db"
	"restaurant-menu/models"
)

// Repository runs CRUD operations for restaurants and menu items against the
// store handle it was built with. Each method is one unit of work.
type Repository struct {
	db *db.DB
}

func NewRepository(d *db.DB) *Repository {
	return &Repository{db: d}
}

func validationErr(err error) error {
	var fe *models.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Reason: fe.Reason}
	}
	return err
}
