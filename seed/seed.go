// Package seed loads restaurants and their menus from YAML and stores them
// through the repository, so the usual validation applies.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"restaurant-menu/models"
	"restaurant-menu/services"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type File struct {
	Restaurants []Restaurant `yaml:"restaurants"`
}

type Restaurant struct {
	Name      string     `yaml:"name"`
	MenuItems []MenuItem `yaml:"menu_items"`
}

type MenuItem struct {
	Name        string `yaml:"name"`
	Course      string `yaml:"course"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

// Load parses a seed document. Unknown keys are rejected so typos surface.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &f, nil
}

// Default returns the bundled sample data.
func Default() (*File, error) {
	return Load(bytes.NewReader(defaultYAML))
}

// Stats counts what Apply created.
type Stats struct {
	Restaurants int
	MenuItems   int
}

// Apply creates every restaurant and menu item in f. It stops at the first
// error; rows created before it stay.
func Apply(ctx context.Context, repo *services.Repository, f *File) (Stats, error) {
	var st Stats
	for _, r := range f.Restaurants {
		rest, err := repo.CreateRestaurant(ctx, r.Name)
		if err != nil {
			return st, fmt.Errorf("restaurant %q: %w", r.Name, err)
		}
		st.Restaurants++
		for _, it := range r.MenuItems {
			_, err := repo.CreateMenuItem(ctx, rest.ID, models.MenuItemFields{
				Name:        it.Name,
				Course:      it.Course,
				Description: it.Description,
				Price:       it.Price,
			})
			if err != nil {
				return st, fmt.Errorf("menu item %q of %q: %w", it.Name, r.Name, err)
			}
			st.MenuItems++
		}
	}
	return st, nil
}
