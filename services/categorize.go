package services

import "restaurant-menu/models"

// Menu is a restaurant's items split into course buckets for display.
type Menu struct {
	Appetizers    []models.MenuItem
	Entrees       []models.MenuItem
	Desserts      []models.MenuItem
	Beverages     []models.MenuItem
	Uncategorized []models.MenuItem
}

// Categorize buckets items by exact, case-sensitive course name. Items whose
// course is not one of the four recognized names land in Uncategorized.
// Input order is kept inside every bucket.
func Categorize(items []models.MenuItem) Menu {
	var m Menu
	for _, it := range items {
		switch it.Course {
		case models.CourseAppetizer:
			m.Appetizers = append(m.Appetizers, it)
		case models.CourseEntree:
			m.Entrees = append(m.Entrees, it)
		case models.CourseDessert:
			m.Desserts = append(m.Desserts, it)
		case models.CourseBeverage:
			m.Beverages = append(m.Beverages, it)
		default:
			m.Uncategorized = append(m.Uncategorized, it)
		}
	}
	return m
}

// Empty reports whether the menu has no items at all.
func (m Menu) Empty() bool {
	return m.Len() == 0
}

func (m Menu) Len() int {
	return len(m.Appetizers) + len(m.Entrees) + len(m.Desserts) + len(m.Beverages) + len(m.Uncategorized)
}

// Section is one titled bucket of a menu.
type Section struct {
	Title string
	Items []models.MenuItem
}

// Sections returns the non-empty buckets in display order.
func (m Menu) Sections() []Section {
	all := []Section{
		{"Appetizers", m.Appetizers},
		{"Entrees", m.Entrees},
		{"Desserts", m.Desserts},
		{"Beverages", m.Beverages},
		{"Other", m.Uncategorized},
	}
	var out []Section
	for _, s := range all {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}
