package qr

import (
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/shopfront-dev/go-shopfront-client/png"
)

var logger = logrus.WithField("component", "shopfront.qr")

// CheckoutPNG renders a checkout URL as a PNG QR code so the payment page can
// be handed off to a phone.
func CheckoutPNG(checkoutURL string) ([]byte, error) {
	return linkPNG(checkoutURL, 300)
}

// DownloadPNG renders a signed download URL as a PNG QR code. The link is
// time-limited, so the image should be generated right before display.
func DownloadPNG(signedURL string) ([]byte, error) {
	return linkPNG(signedURL, 300)
}

func linkPNG(link string, size int) ([]byte, error) {
	if err := validateLink(link); err != nil {
		return nil, err
	}

	logger.Debugf("rendering QR for %s", link)
	b, err := png.Qr(link, size)
	if err != nil {
		return nil, errors.Wrap(err, "encode QR")
	}
	return b, nil
}

func validateLink(link string) error {
	if strings.TrimSpace(link) == "" {
		return errors.New("link is empty")
	}

	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return errors.Wrap(err, "invalid link")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("link must be http(s), got: %q", link)
	}
	if u.Host == "" {
		return errors.Errorf("link must include a host, got: %q", link)
	}
	return nil
}
