package response

import (
	"time"

	"shelflife/internal/domain/product"
	"shelflife/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID      uuid.UUID       `json:"id"`
	TeamID  uuid.UUID       `json:"team_id"`
	Name    string          `json:"name"`
	Code    *string         `json:"code,omitempty"`
	Brand   *BrandResponse  `json:"brand,omitempty"`
	Store   *StoreResponse  `json:"store,omitempty"`
	Batches []BatchResponse `json:"batches"`
}

type BrandResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type StoreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BatchResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ExpDate   time.Time `json:"exp_date"`
	Amount    int       `json:"amount"`
	Price     *float64  `json:"price,omitempty"`
	TempPrice *float64  `json:"temp_price,omitempty"`
}

type CreatedProductResponse struct {
	ID      uuid.UUID  `json:"id"`
	TeamID  uuid.UUID  `json:"team_id"`
	Name    string     `json:"name"`
	Code    *string    `json:"code,omitempty"`
	BrandID *uuid.UUID `json:"brand_id,omitempty"`
	StoreID *uuid.UUID `json:"store_id,omitempty"`
}

func FromProductView(view *queries.ProductView) *ProductResponse {
	resp := &ProductResponse{
		ID:      view.ID,
		TeamID:  view.TeamID,
		Name:    view.Name,
		Code:    view.Code,
		Batches: make([]BatchResponse, 0, len(view.Batches)),
	}
	if view.Brand != nil {
		resp.Brand = &BrandResponse{ID: view.Brand.ID, Name: view.Brand.Name}
	}
	if view.Store != nil {
		resp.Store = &StoreResponse{ID: view.Store.ID, Name: view.Store.Name}
	}
	for _, b := range view.Batches {
		resp.Batches = append(resp.Batches, BatchResponse{
			ID:        b.ID,
			Name:      b.Name,
			ExpDate:   b.ExpDate,
			Amount:    b.Amount,
			Price:     b.Price,
			TempPrice: b.TempPrice,
		})
	}
	return resp
}

func FromProduct(p *product.Product) *CreatedProductResponse {
	return &CreatedProductResponse{
		ID:      p.ID,
		TeamID:  p.TeamID,
		Name:    p.Name,
		Code:    p.Code,
		BrandID: p.BrandID,
		StoreID: p.StoreID,
	}
}

func FromBatch(b *product.Batch) *BatchResponse {
	return &BatchResponse{
		ID:        b.ID,
		Name:      b.Name,
		ExpDate:   b.ExpDate,
		Amount:    b.Amount,
		Price:     b.Price,
		TempPrice: b.TempPrice,
	}
}

func FromBatches(batches []product.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, *FromBatch(&batches[i]))
	}
	return out
}

func FromBrands(brands []product.Brand) []BrandResponse {
	out := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, BrandResponse{ID: b.ID, Name: b.Name})
	}
	return out
}
