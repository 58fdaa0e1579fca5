// internal/domain/sitesettings/entity.go
package sitesettings

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidSettings = errors.New("sitesettings: invalid")

// DocID is the fixed Firestore docId for the singleton settings document.
const DocID = "site"

// SiteSettings is the storefront-wide configuration edited in the admin
// back office (banner text, contact info, social links, shipping fee).
type SiteSettings struct {
	SiteName    string `json:"siteName" firestore:"siteName"`
	BannerText  string `json:"bannerText" firestore:"bannerText"`
	ContactMail string `json:"contactMail" firestore:"contactMail"`
	Phone       string `json:"phone" firestore:"phone"`
	Instagram   string `json:"instagram" firestore:"instagram"`
	Facebook    string `json:"facebook" firestore:"facebook"`

	// ShippingFee is a display price string, parsed like product prices.
	ShippingFee string `json:"shippingFee" firestore:"shippingFee"`

	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Validate checks the minimum viable settings document.
func (s *SiteSettings) Validate() error {
	if s == nil || strings.TrimSpace(s.SiteName) == "" {
		return ErrInvalidSettings
	}
	return nil
}
