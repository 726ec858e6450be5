package model

// Category groups products. A category cannot be deleted while any
// product references it.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Supplier is referenced by products through a nullable logical FK.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// Customer places orders.
type Customer struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Email   *string `json:"email,omitempty"`
	Address string  `json:"address"`
}
