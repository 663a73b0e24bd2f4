// internal/models/property.go
package models

import (
	"time"

	"rentals/internal/pagination"
)

type Property struct {
	ID          int        `json:"id"`
	OwnerID     string     `json:"ownerId"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	Beds        int        `json:"beds"`
	Baths       int        `json:"baths"`
	SquareFeet  int        `json:"squareFeet"`
	Amenities   []string   `json:"amenities"`
	Rates       Rates      `json:"rates"`
	SellerInfo  SellerInfo `json:"sellerInfo"`
	Images      []string   `json:"images"`
	IsFeatured  bool       `json:"isFeatured"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Location struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// Address is the single-line form sent to the geocoder.
func (l Location) Address() string {
	address := ""
	for _, part := range []string{l.Street, l.City, l.State, l.Zipcode} {
		if part == "" {
			continue
		}
		if address != "" {
			address += ", "
		}
		address += part
	}
	return address
}

type Rates struct {
	Nightly *int `json:"nightly"`
	Weekly  *int `json:"weekly"`
	Monthly *int `json:"monthly"`
}

type SellerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PropertyRequest struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	Beds        int        `json:"beds"`
	Baths       int        `json:"baths"`
	SquareFeet  int        `json:"squareFeet"`
	Amenities   []string   `json:"amenities"`
	Rates       Rates      `json:"rates"`
	SellerInfo  SellerInfo `json:"sellerInfo"`
	Images      []string   `json:"images"`
}

// PropertyTypeAll disables the type filter.
const PropertyTypeAll = "All"

type PropertyFilter struct {
	Location     *string
	PropertyType *string
}

// PropertyPage is one page of properties plus the strip used to render its
// page links.
type PropertyPage struct {
	Properties []Property         `json:"properties"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
	Pages      []pagination.Entry `json:"pages" swaggertype:"array,object"`
}

type FavoriteStatus struct {
	PropertyID int  `json:"propertyId"`
	IsFavorite bool `json:"isFavorite"`
}
