package model

// GroceriesCategory is the one category whose products may carry no brand.
const GroceriesCategory = "groceries"

type Product struct {
	ID                   int        `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage"`
	Rating               float64    `json:"rating"`
	Stock                int        `json:"stock"`
	Brand                *string    `json:"brand,omitempty"`
	Thumbnail            string     `json:"thumbnail,omitempty"`
	Images               []string   `json:"images,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Sku                  string     `json:"sku,omitempty"`
	Weight               float64    `json:"weight,omitempty"`
	Dimensions           Dimensions `json:"dimensions,omitzero"`
	WarrantyInformation  string     `json:"warrantyInformation,omitempty"`
	ShippingInformation  string     `json:"shippingInformation,omitempty"`
	AvailabilityStatus   string     `json:"availabilityStatus,omitempty"`
	Reviews              []Review   `json:"reviews,omitempty"`
	ReturnPolicy         string     `json:"returnPolicy,omitempty"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity,omitempty"`
	Meta                 Meta       `json:"meta,omitzero"`
}

// BrandOrEmpty returns the brand, or "" for products that carry none.
func (p Product) BrandOrEmpty() string {
	if p.Brand == nil {
		return ""
	}
	return *p.Brand
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type Review struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

type Meta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Barcode   string `json:"barcode"`
	QRCode    string `json:"qrCode"`
}

// ProductsResponse is the listing envelope shared by every collection endpoint.
type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// SingleProductResponse is a product as returned by get, update and delete.
// IsDeleted and DeletedOn are only present after a delete.
type SingleProductResponse struct {
	Product
	IsDeleted *bool   `json:"isDeleted,omitempty"`
	DeletedOn *string `json:"deletedOn,omitempty"`
}

// ProductInput is the body of add and update calls. Nil fields are omitted
// so partial updates send only what changed.
type ProductInput struct {
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Category           *string  `json:"category,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Rating             *float64 `json:"rating,omitempty"`
	Stock              *int     `json:"stock,omitempty"`
	Thumbnail          *string  `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}
