// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is a catalog item as it is persisted and returned by the API.
type Product struct {
	// ID is assigned by the storage layer on insert and never changes afterwards.
	ID int64 `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Price is the price in the smallest currency unit.
	Price int64 `json:"price"`

	// ImageURL points to the product picture.
	ImageURL string `json:"image_url"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductDTO is the request payload for creating and updating products.
//
// It deliberately has no ID field: identifiers are assigned by storage on
// create and taken from the request path on update, so any "id" sent by the
// client is dropped during decoding.
type ProductDTO struct {
	Name     string `json:"name" validate:"required,max=15"`
	Price    int64  `json:"price" validate:"gte=0"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

// ToProduct converts the payload to a [Product] without an identifier.
func (d ProductDTO) ToProduct() Product {
	return Product{
		Name:     d.Name,
		Price:    d.Price,
		ImageURL: d.ImageURL,
	}
}

// ToProductWithID converts the payload to a [Product] carrying the given id.
func (d ProductDTO) ToProductWithID(id int64) Product {
	product := d.ToProduct()
	product.ID = id
	return product
}
