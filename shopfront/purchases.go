package shopfront

import (
	"context"

	"github.com/shopfront-dev/go-shopfront-client/shopfront/api"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/model"
)

type PurchaseService interface {
	// Checkout opens a payment session for the product and returns the URL
	// the buyer should be sent to.
	Checkout(ctx context.Context, productID string) (string, error)

	List(ctx context.Context) ([]model.Purchase, error)

	// DownloadLink issues a fresh signed URL for a purchased product.
	DownloadLink(ctx context.Context, productID string) (string, error)
}

type purchaseService struct {
	client *api.Client
}

func NewPurchaseService(client *api.Client) PurchaseService {
	return &purchaseService{client: client}
}

func (s *purchaseService) Checkout(ctx context.Context, productID string) (string, error) {
	res, err := api.Post[model.CheckoutResponse](ctx, s.client, "/checkout", model.CheckoutRequest{ProductID: productID})
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", nil
	}
	return res.CheckoutURL, nil
}

func (s *purchaseService) List(ctx context.Context) ([]model.Purchase, error) {
	res, err := api.Get[model.PurchaseListResponse](ctx, s.client, "/purchases")
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return res.Items, nil
}

func (s *purchaseService) DownloadLink(ctx context.Context, productID string) (string, error) {
	res, err := api.Post[model.DownloadResponse](ctx, s.client, "/downloads/"+api.PathSegment(productID), nil)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", nil
	}
	return res.SignedURL, nil
}
