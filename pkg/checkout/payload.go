// pkg/checkout/payload.go
package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
)

// Multipart field names shared by the submission builder and the
// server-side parser.
const (
	FieldName        = "name"
	FieldMobile      = "mobile"
	FieldAltMobile   = "altMobile"
	FieldAddress     = "address"
	FieldPincode     = "pincode"
	FieldPaymentMode = "paymentMode"
	FieldItems       = "items"
	FieldTotals      = "totals"
	FileScreenshot   = "screenshot"
)

// Item is a value copy of a cart line taken at submission time, so the
// payload stays intact when the cart is cleared right after a
// successful submission.
type Item struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	OriginalPrice float64 `json:"originalPrice"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
}

// DeliveryForm holds the scalar fields of a checkout submission.
type DeliveryForm struct {
	Name        string
	Mobile      string
	AltMobile   string
	Address     string
	Pincode     string
	PaymentMode string
}

// Screenshot is an optional payment-proof attachment (UPI mode).
type Screenshot struct {
	Filename string
	Content  io.Reader
}

// BuildPayload packages one checkout submission: delivery scalars, the
// JSON-encoded item snapshots, the JSON-encoded rounded totals, and an
// optional screenshot file. It returns the body and its content type.
func BuildPayload(form DeliveryForm, items []Item, totals Totals, shot *Screenshot) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		FieldName:        form.Name,
		FieldMobile:      form.Mobile,
		FieldAltMobile:   form.AltMobile,
		FieldAddress:     form.Address,
		FieldPincode:     form.Pincode,
		FieldPaymentMode: form.PaymentMode,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode items: %w", err)
	}
	if err := w.WriteField(FieldItems, string(itemsJSON)); err != nil {
		return nil, "", fmt.Errorf("failed to write items: %w", err)
	}

	totalsJSON, err := json.Marshal(totals.Rounded())
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode totals: %w", err)
	}
	if err := w.WriteField(FieldTotals, string(totalsJSON)); err != nil {
		return nil, "", fmt.Errorf("failed to write totals: %w", err)
	}

	if shot != nil {
		part, err := w.CreateFormFile(FileScreenshot, shot.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create screenshot part: %w", err)
		}
		if _, err := io.Copy(part, shot.Content); err != nil {
			return nil, "", fmt.Errorf("failed to copy screenshot: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize payload: %w", err)
	}

	return body, w.FormDataContentType(), nil
}
