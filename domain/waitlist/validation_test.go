package waitlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	t.Run("accepts common formats", func(t *testing.T) {
		for _, phone := range []string{
			"+1 (555) 123-4567",
			"08012345678",
			"+44 20 7946 0958",
		} {
			assert.Empty(t, validatePhoneNumber(phone), phone)
		}
	})

	t.Run("rejects disallowed characters", func(t *testing.T) {
		assert.NotEmpty(t, validatePhoneNumber("555-ABC-1234"))
		assert.NotEmpty(t, validatePhoneNumber("555.123.4567"))
	})

	t.Run("rejects too few digits", func(t *testing.T) {
		assert.NotEmpty(t, validatePhoneNumber("+1 (555) 123"))
	})
}

func TestValidateDetails(t *testing.T) {
	t.Run("no errors for an empty request", func(t *testing.T) {
		assert.Nil(t, validateDetails(&UpdateDetailsRequest{}, "", ""))
	})

	t.Run("collects every failing field", func(t *testing.T) {
		req := &UpdateDetailsRequest{
			PhoneNumber:    "123",
			TypeOfBusiness: "Other",
			Country:        "Other",
		}

		details := validateDetails(req, "", "")

		assert.Len(t, details, 3)
		assert.Contains(t, details, "phone_number")
		assert.Contains(t, details, "custom_business_types")
		assert.Contains(t, details, "custom_country")
	})

	t.Run("custom value in the same request satisfies the conditional rule", func(t *testing.T) {
		req := &UpdateDetailsRequest{
			TypeOfBusiness:      "Other",
			CustomBusinessTypes: "Bakery",
		}

		assert.Nil(t, validateDetails(req, "", ""))
	})

	t.Run("previously stored custom value satisfies the conditional rule", func(t *testing.T) {
		req := &UpdateDetailsRequest{Country: "Other"}

		assert.Nil(t, validateDetails(req, "", "Wakanda"))
	})

	t.Run("non-Other selections need no custom value", func(t *testing.T) {
		req := &UpdateDetailsRequest{
			TypeOfBusiness: "Retail",
			Country:        "Nigeria",
		}

		assert.Nil(t, validateDetails(req, "", ""))
	})
}
