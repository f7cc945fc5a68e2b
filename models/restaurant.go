package models

// Restaurant is a row from the restaurants table.
type Restaurant struct {
	ID   int64
	Name string
}

// RestaurantFields is the set of restaurant fields a caller may submit.
type RestaurantFields struct {
	Name string
}

// RestaurantFieldsFrom picks the recognized keys out of submitted form values.
// Unknown keys are ignored.
func RestaurantFieldsFrom(values map[string]string) RestaurantFields {
	return RestaurantFields{Name: values["name"]}
}

// Apply overwrites every field that has a non-empty value in f. Empty values
// leave the stored field alone. It reports whether anything was written.
func (r *Restaurant) Apply(f RestaurantFields) bool {
	return setIfNonEmpty(&r.Name, f.Name)
}

// Validate checks required fields and column limits.
func (r *Restaurant) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	return maxLen("name", r.Name, MaxNameLen)
}
