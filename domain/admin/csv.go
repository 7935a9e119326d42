package admin

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/storelaunch/launchlist/internal/models"
	"github.com/storelaunch/launchlist/pkg/constants"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

// exportHeader is the fixed column order of the waitlist export. Consumers
// parse exports positionally, so the order must never change.
var exportHeader = []string{
	"ID",
	"Email",
	"Full Name",
	"Phone Number",
	"Type of Business",
	"Custom Business Types",
	"Country",
	"Custom Country",
	"City",
	"Has Run Store Before",
	"Wants Tutorial Book",
	"IP Address",
	"User Agent",
	"Referrer",
	"UTM Source",
	"UTM Medium",
	"UTM Campaign",
	"Status",
	"Email Verified",
	"Email Verification Sent At",
	"Created At",
	"Updated At",
}

func renderEntriesCSV(entries []*models.WaitlistEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, apperrors.NewInternalServerError("unable to write export header", err)
	}

	for _, entry := range entries {
		if err := writer.Write(entryToRecord(entry)); err != nil {
			return nil, apperrors.NewInternalServerError("unable to write export row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperrors.NewInternalServerError("unable to flush export", err)
	}

	return buf.Bytes(), nil
}

func entryToRecord(entry *models.WaitlistEntry) []string {
	return []string{
		entry.ID,
		entry.Email,
		entry.FullName,
		entry.PhoneNumber,
		entry.TypeOfBusiness,
		entry.CustomBusinessTypes,
		entry.Country,
		entry.CustomCountry,
		entry.City,
		strconv.FormatBool(entry.HasRunStoreBefore),
		strconv.FormatBool(entry.WantsTutorialBook),
		entry.IPAddress,
		entry.UserAgent,
		entry.Referrer,
		entry.UTMSource,
		entry.UTMMedium,
		entry.UTMCampaign,
		entry.Status,
		strconv.FormatBool(entry.EmailVerified),
		formatOptionalTime(entry.EmailVerificationSentAt),
		entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		entry.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constants.RFC3339DateTimeFormat)
}
