package models

import "fmt"

// ProductNotFoundError is returned when no product with the requested ID
// exists in the store.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID '%s' was not found.", e.ID)
}

// ProductAlreadyExistsError is returned when creating a product whose name
// is already taken by a persisted product.
type ProductAlreadyExistsError struct {
	Name string
}

func (e *ProductAlreadyExistsError) Error() string {
	return fmt.Sprintf("Product with name '%s' already exists.", e.Name)
}
