package domain

import "encoding/json"

// Default merchant settings values.
const (
	DefaultCompanyName  = "VendorGuard Pro"
	DefaultLockDuration = "24"
)

// MerchantSettings holds merchant display settings. Saves are a full
// overwrite; there is no field-level merge. LockDuration is stored as the
// raw string the caller supplied ("0", "24", "48" in practice, but any
// value is accepted).
type MerchantSettings struct {
	CompanyName   string `json:"companyName"`
	LockDuration  string `json:"lockDuration"`
	WalletAddress string `json:"walletAddress,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"` // opaque encoded blob
}

// DefaultSettings returns the settings used before a merchant saves anything.
func DefaultSettings() MerchantSettings {
	return MerchantSettings{
		CompanyName:  DefaultCompanyName,
		LockDuration: DefaultLockDuration,
	}
}

// DecodeSettings parses a persisted settings snapshot. Absent or malformed
// data decodes to defaults. Fields missing from the snapshot fall back to
// their default values.
func DecodeSettings(data []byte) MerchantSettings {
	s := DefaultSettings()
	if len(data) == 0 {
		return s
	}
	var stored MerchantSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		return s
	}
	if stored.CompanyName != "" {
		s.CompanyName = stored.CompanyName
	}
	if stored.LockDuration != "" {
		s.LockDuration = stored.LockDuration
	}
	s.WalletAddress = stored.WalletAddress
	s.ProfileImage = stored.ProfileImage
	return s
}
