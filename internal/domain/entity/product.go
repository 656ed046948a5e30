package entity

import (
	"time"
)

type Product struct {
	ID          int64     `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description *string   `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	Quantity    int       `json:"quantity" firestore:"quantity"`
	Category    *string   `json:"category" firestore:"category"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (p *Product) InStock() bool {
	return p.Quantity > 0
}
