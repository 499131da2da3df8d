package entity

// Product is a read-only catalog listing for a digital service. The
// authoritative source is a static JSON document loaded at startup; products
// are never mutated at runtime.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Features    []string `json:"features,omitempty"`
}

// Course is a read-only catalog listing for a downloadable course.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Level       string  `json:"level,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Price       float64 `json:"price"`
}
