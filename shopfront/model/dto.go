package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PriceCents  int      `json:"priceCents"`
	Currency    string   `json:"currency,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CoverURL    string   `json:"coverUrl,omitempty"`
}

type Purchase struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Product     *Product  `json:"product,omitempty"`
	PurchasedAt time.Time `json:"purchasedAt,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CheckoutRequest struct {
	ProductID string `json:"productId"`
}

type UserResponse struct {
	User User `json:"user"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type ProductResponse struct {
	Product Product `json:"product"`
}

// ProductListResponse is the paged result of a catalog search.
type ProductListResponse struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type PurchaseListResponse struct {
	Items []Purchase `json:"items"`
}

// DownloadResponse carries the time-limited link issued per purchase.
type DownloadResponse struct {
	SignedURL string `json:"signedUrl"`
}

type WishlistResponse struct {
	Items []Product `json:"items"`
}
