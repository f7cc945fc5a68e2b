package models

// MenuItem is a row from menu_items. RestaurantID refers to the owning
// restaurant by value; the database enforces that it exists.
type MenuItem struct {
	ID           int64
	Name         string
	Course       string // Appetizer, Entree, Dessert, Beverage; anything else is uncategorized
	Description  string
	Price        string // kept as entered, e.g. "$5.99"
	RestaurantID int64
}

const (
	CourseAppetizer = "Appetizer"
	CourseEntree    = "Entree"
	CourseDessert   = "Dessert"
	CourseBeverage  = "Beverage"
)

// Courses lists the recognized course names in menu display order.
var Courses = []string{CourseAppetizer, CourseEntree, CourseDessert, CourseBeverage}

// Column limits.
const (
	MaxNameLen        = 80
	MaxCourseLen      = 250
	MaxDescriptionLen = 250
	MaxPriceLen       = 8
)

// MenuItemFields is the set of menu item fields a caller may submit.
type MenuItemFields struct {
	Name        string
	Course      string
	Description string
	Price       string
}

// MenuItemFieldsFrom picks the recognized keys out of submitted form values.
// Unknown keys, restaurant_id included, are ignored.
func MenuItemFieldsFrom(values map[string]string) MenuItemFields {
	return MenuItemFields{
		Name:        values["name"],
		Course:      values["course"],
		Description: values["description"],
		Price:       values["price"],
	}
}

// NewMenuItem builds an unsaved item for restaurantID from submitted fields.
func NewMenuItem(restaurantID int64, f MenuItemFields) MenuItem {
	return MenuItem{
		Name:         f.Name,
		Course:       f.Course,
		Description:  f.Description,
		Price:        f.Price,
		RestaurantID: restaurantID,
	}
}

// Apply overwrites every field that has a non-empty value in f and reports
// whether anything was written.
func (m *MenuItem) Apply(f MenuItemFields) bool {
	changed := setIfNonEmpty(&m.Name, f.Name)
	changed = setIfNonEmpty(&m.Course, f.Course) || changed
	changed = setIfNonEmpty(&m.Description, f.Description) || changed
	changed = setIfNonEmpty(&m.Price, f.Price) || changed
	return changed
}

func (m *MenuItem) Validate() error {
	if err := required("name", m.Name); err != nil {
		return err
	}
	checks := []struct {
		field, value string
		max          int
	}{
		{"name", m.Name, MaxNameLen},
		{"course", m.Course, MaxCourseLen},
		{"description", m.Description, MaxDescriptionLen},
		{"price", m.Price, MaxPriceLen},
	}
	for _, c := range checks {
		if err := maxLen(c.field, c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}
