// pkg/checkout/validate_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() DeliveryForm {
	return DeliveryForm{
		Name:        "Asha Rao",
		Mobile:      "9876543210",
		Address:     "12 Temple Street, Mysuru",
		Pincode:     "570001",
		PaymentMode: "upi",
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	assert.Empty(t, validForm().Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	errs := DeliveryForm{}.Validate()
	assert.ElementsMatch(t,
		[]string{FieldName, FieldMobile, FieldAddress, FieldPincode, FieldPaymentMode},
		fieldsOf(errs))
}

func TestValidateMobileFormat(t *testing.T) {
	form := validForm()
	form.Mobile = "98765"
	assert.Equal(t, []string{FieldMobile}, fieldsOf(form.Validate()))

	form.Mobile = "98765432101"
	assert.Equal(t, []string{FieldMobile}, fieldsOf(form.Validate()))

	form.Mobile = "98765abc10"
	assert.Equal(t, []string{FieldMobile}, fieldsOf(form.Validate()))
}

func TestValidateAltMobileOptional(t *testing.T) {
	form := validForm()
	assert.Empty(t, form.Validate())

	form.AltMobile = "9123456780"
	assert.Empty(t, form.Validate())

	form.AltMobile = "12345"
	assert.Equal(t, []string{FieldAltMobile}, fieldsOf(form.Validate()))
}

func TestValidatePincodeFormat(t *testing.T) {
	form := validForm()
	form.Pincode = "5700"
	assert.Equal(t, []string{FieldPincode}, fieldsOf(form.Validate()))

	form.Pincode = "57000a"
	assert.Equal(t, []string{FieldPincode}, fieldsOf(form.Validate()))
}
