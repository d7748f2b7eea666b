package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/shopfront-dev/go-shopfront-client/shopfront"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/apierr"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/model"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/qr"
	"github.com/shopfront-dev/go-shopfront-client/shopfront/util"
)

func main() {

	_ = godotenv.Load()

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	client, err := shopfront.New(shopfront.ConfigFromEnv())
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	email := util.GetEnvOrDefault("SHOPFRONT_EMAIL", "demo@example.com")
	password := util.GetEnvOrDefault("SHOPFRONT_PASSWORD", "demo-password")

	user, err := client.Auth.Signin(ctx, model.SigninRequest{Email: email, Password: password})
	if err != nil {
		fail("signin", err)
	}
	if user != nil {
		logrus.Infof("signed in as %s", user.Email)
	}

	page, err := client.Products.List(ctx, shopfront.ProductQuery{Limit: 5})
	if err != nil {
		fail("list products", err)
	}
	logrus.Infof("catalog holds %d products", page.Total)
	for _, p := range page.Items {
		logrus.Infof("  %s (%d %s)", p.Title, p.PriceCents, p.Currency)
	}

	if len(page.Items) == 0 {
		return
	}

	checkoutURL, err := client.Purchases.Checkout(ctx, page.Items[0].ID)
	if err != nil {
		fail("checkout", err)
	}
	logrus.Infof("checkout at %s", checkoutURL)

	image, err := qr.CheckoutPNG(checkoutURL)
	if err != nil {
		logrus.WithError(err).Warn("can't render checkout QR")
		return
	}
	if err := os.WriteFile("checkout.png", image, 0o644); err != nil {
		logrus.WithError(err).Warn("can't write checkout.png")
		return
	}
	logrus.Info("checkout QR written to checkout.png")
}

func fail(op string, err error) {
	if ae, ok := apierr.As(err); ok {
		logrus.Fatalf("%s failed: %s", op, ae.Error())
	}
	logrus.Fatalf("%s failed: %v", op, err)
}
