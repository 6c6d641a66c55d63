package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(publicID, table string) ([]byte, error)
}

// DefaultQRGenerator renders the customer ordering link for a restaurant,
// optionally scoped to a table, as a PNG for printing on table cards.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(publicID, table string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/client/%s", g.BaseURL, publicID)
	if table != "" {
		qrData += "?table=" + table
	}
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
