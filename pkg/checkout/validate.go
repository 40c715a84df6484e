// pkg/checkout/validate.go
package checkout

import "regexp"

var (
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// FieldError is a per-field validation message meant for display next
// to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the delivery form locally and synchronously. A
// non-empty result means the submission must not reach the network.
func (f DeliveryForm) Validate() []FieldError {
	var errs []FieldError

	if f.Name == "" {
		errs = append(errs, FieldError{Field: FieldName, Message: "Name is required"})
	}
	if f.Mobile == "" {
		errs = append(errs, FieldError{Field: FieldMobile, Message: "Mobile number is required"})
	} else if !mobilePattern.MatchString(f.Mobile) {
		errs = append(errs, FieldError{Field: FieldMobile, Message: "Mobile number must be exactly 10 digits"})
	}
	if f.AltMobile != "" && !mobilePattern.MatchString(f.AltMobile) {
		errs = append(errs, FieldError{Field: FieldAltMobile, Message: "Alternate mobile number must be exactly 10 digits"})
	}
	if f.Address == "" {
		errs = append(errs, FieldError{Field: FieldAddress, Message: "Address is required"})
	}
	if f.Pincode == "" {
		errs = append(errs, FieldError{Field: FieldPincode, Message: "Pincode is required"})
	} else if !pincodePattern.MatchString(f.Pincode) {
		errs = append(errs, FieldError{Field: FieldPincode, Message: "Pincode must be exactly 6 digits"})
	}
	if f.PaymentMode == "" {
		errs = append(errs, FieldError{Field: FieldPaymentMode, Message: "Payment mode is required"})
	}

	return errs
}
