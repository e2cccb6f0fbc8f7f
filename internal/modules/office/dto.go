package office

type CreateOfficeRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Lat             *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng             *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	AddressLine1    string   `json:"address_line1" validate:"required"`
	PricePerDay     *int     `json:"price_per_day" validate:"required,gte=100"`
	MonthlyDiscount *int     `json:"monthly_discount" validate:"omitempty,gte=0"`
	Hidden          *bool    `json:"hidden"`
	Tags            []int64  `json:"tags" validate:"omitempty,dive,gt=0"`
}

// All fields optional on update; nil means leave unchanged. A non-nil Tags
// fully replaces the association set.
type UpdateOfficeRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=1"`
	Description     *string  `json:"description" validate:"omitempty,min=1"`
	Lat             *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng             *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	AddressLine1    *string  `json:"address_line1" validate:"omitempty,min=1"`
	PricePerDay     *int     `json:"price_per_day" validate:"omitempty,gte=100"`
	MonthlyDiscount *int     `json:"monthly_discount" validate:"omitempty,gte=0"`
	Hidden          *bool    `json:"hidden"`
	Tags            *[]int64 `json:"tags" validate:"omitempty,dive,gt=0"`
}
