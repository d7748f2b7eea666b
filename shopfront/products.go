package shopfront

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopfront-dev/go-shopfront-client/shopfront/api"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/model"
)

// ProductQuery are the catalog search knobs. Zero-valued fields are left out
// of the query string entirely.
type ProductQuery struct {
	Q     string
	Tags  []string
	Page  int
	Limit int
	Sort  string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	for _, tag := range q.Tags {
		v.Add("tags", tag)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

type ProductService interface {
	List(ctx context.Context, query ProductQuery) (*model.ProductListResponse, error)
	Get(ctx context.Context, id string) (*model.Product, error)
}

type productService struct {
	client *api.Client
}

func NewProductService(client *api.Client) ProductService {
	return &productService{client: client}
}

func (s *productService) List(ctx context.Context, query ProductQuery) (*model.ProductListResponse, error) {
	return api.Get[model.ProductListResponse](ctx, s.client, "/products"+api.EncodeQuery(query.values()))
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	res, err := api.Get[model.ProductResponse](ctx, s.client, "/products/"+api.PathSegment(id))
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return &res.Product, nil
}
