package shopfront

import (
	"context"

	"github.com/shopfront-dev/go-shopfront-client/shopfront/api"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/model"
)

type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, error)
	Signin(ctx context.Context, req model.SigninRequest) (*model.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*model.User, error)
}

type authService struct {
	client *api.Client
}

func NewAuthService(client *api.Client) AuthService {
	return &authService{client: client}
}

func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	res, err := api.Post[model.UserResponse](ctx, s.client, "/auth/signup", req)
	if err != nil {
		return nil, err
	}
	return userOf(res), nil
}

func (s *authService) Signin(ctx context.Context, req model.SigninRequest) (*model.User, error) {
	res, err := api.Post[model.UserResponse](ctx, s.client, "/auth/signin", req)
	if err != nil {
		return nil, err
	}
	return userOf(res), nil
}

func (s *authService) Logout(ctx context.Context) error {
	_, err := api.Post[model.OkResponse](ctx, s.client, "/auth/logout", nil)
	return err
}

func (s *authService) Me(ctx context.Context) (*model.User, error) {
	res, err := api.Get[model.UserResponse](ctx, s.client, "/me")
	if err != nil {
		return nil, err
	}
	return userOf(res), nil
}

func userOf(res *model.UserResponse) *model.User {
	if res == nil {
		return nil
	}
	return &res.User
}
