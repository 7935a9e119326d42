package waitlist

import (
	"regexp"
	"strings"
)

// phonePattern allows digits, "+", "-", parentheses and spaces; everything
// else is rejected outright.
var phonePattern = regexp.MustCompile(`^[+\d\s()\-]+$`)

var nonDigits = regexp.MustCompile(`\D`)

const minPhoneDigits = 10

func validatePhoneNumber(phone string) string {
	if !phonePattern.MatchString(phone) {
		return "Phone number may only contain digits, spaces, and + - ( )"
	}
	if len(nonDigits.ReplaceAllString(phone, "")) < minPhoneDigits {
		return "Phone number must contain at least 10 digits"
	}
	return ""
}

// validateDetails collects every field error in a details submission rather
// than failing on the first one. Fields are optional per request; the
// conditional custom_* requirements fire when a submitted value is "Other"
// and neither the request nor the stored entry supplies the free-text
// counterpart.
func validateDetails(req *UpdateDetailsRequest, existingCustomBusiness, existingCustomCountry string) map[string]string {
	details := make(map[string]string)

	if req.PhoneNumber != "" {
		if msg := validatePhoneNumber(req.PhoneNumber); msg != "" {
			details["phone_number"] = msg
		}
	}

	if req.FullName != "" && strings.TrimSpace(req.FullName) == "" {
		details["full_name"] = "Full name cannot be blank"
	}
	if req.City != "" && strings.TrimSpace(req.City) == "" {
		details["city"] = "City cannot be blank"
	}

	if req.TypeOfBusiness == "Other" &&
		strings.TrimSpace(req.CustomBusinessTypes) == "" &&
		strings.TrimSpace(existingCustomBusiness) == "" {
		details["custom_business_types"] = "Please specify your business type"
	}

	if req.Country == "Other" &&
		strings.TrimSpace(req.CustomCountry) == "" &&
		strings.TrimSpace(existingCustomCountry) == "" {
		details["custom_country"] = "Please specify your country"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}
