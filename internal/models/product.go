package models

import "time"

// Product represents a single catalog item. The ID, timestamps and Version
// are owned by the persistence layer and must never be set by clients;
// before the first save they are empty/nil/zero.
type Product struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Name             string     `json:"name" bson:"name" validate:"required,notblank,min=3"`
	Description      string     `json:"description" bson:"description"`
	Manufacturer     string     `json:"manufacturer" bson:"manufacturer" validate:"required,notblank,min=3"`
	Price            *float64   `json:"price" bson:"price" validate:"required,min=1,max=1000000"`
	Units            *int64     `json:"units" bson:"units" validate:"omitempty,max=10000"`
	CreatedDate      *time.Time `json:"createdDate" bson:"createdDate,omitempty"`
	LastModifiedDate *time.Time `json:"lastModifiedDate" bson:"lastModifiedDate,omitempty"`
	Version          int        `json:"version" bson:"version"`
}

// NewProduct builds a fresh, unpersisted product from client-supplied
// fields. Number of units defaults to 1 if not specified.
func NewProduct(name, description, manufacturer string, price *float64, units *int64) *Product {
	if units == nil || *units == 0 {
		one := int64(1)
		units = &one
	}
	return &Product{
		Name:         name,
		Description:  description,
		Manufacturer: manufacturer,
		Price:        price,
		Units:        units,
	}
}
