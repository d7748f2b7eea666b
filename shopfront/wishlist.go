package shopfront

import (
	"context"

	"github.com/shopfront-dev/go-shopfront-client/shopfront/api"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/model"
)

type WishlistService interface {
	List(ctx context.Context) ([]model.Product, error)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
}

type wishlistService struct {
	client *api.Client
}

func NewWishlistService(client *api.Client) WishlistService {
	return &wishlistService{client: client}
}

func (s *wishlistService) List(ctx context.Context) ([]model.Product, error) {
	res, err := api.Get[model.WishlistResponse](ctx, s.client, "/wishlist")
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return res.Items, nil
}

func (s *wishlistService) Add(ctx context.Context, productID string) error {
	_, err := api.Post[model.OkResponse](ctx, s.client, "/wishlist/"+api.PathSegment(productID), nil)
	return err
}

func (s *wishlistService) Remove(ctx context.Context, productID string) error {
	_, err := api.Delete[model.OkResponse](ctx, s.client, "/wishlist/"+api.PathSegment(productID))
	return err
}
