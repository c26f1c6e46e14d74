package shopsettings

import "time"

// PrintFormat is the thermal paper width used for receipts.
type PrintFormat string

const (
	PrintFormat58mm PrintFormat = "58mm"
	PrintFormat80mm PrintFormat = "80mm"
)

// Settings is the single shop configuration row. Receipt rendering receives
// it as an explicit value, never as ambient state.
type Settings struct {
	ID                  int64       `json:"id"`
	StoreName           string      `json:"storeName"`
	Address             string      `json:"address,omitempty"`
	Email               string      `json:"email,omitempty"`
	Phone               string      `json:"phone,omitempty"`
	Currency            string      `json:"currency"`
	LogoURL             string      `json:"logoUrl,omitempty"`
	EnablePrint         bool        `json:"enablePrint"`
	ShowStoreDetails    bool        `json:"showStoreDetails"`
	ShowCustomerDetails bool        `json:"showCustomerDetails"`
	PrintFormat         PrintFormat `json:"printFormat"`
	PrintHeader         string      `json:"printHeader,omitempty"`
	PrintFooter         string      `json:"printFooter,omitempty"`
	ShowNotes           bool        `json:"showNotes"`
	PrintToken          bool        `json:"printToken"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// Default returns the settings used before the shop row has been saved.
func Default() Settings {
	return Settings{
		StoreName:        "Cafe Station",
		Currency:         "THB",
		EnablePrint:      true,
		ShowStoreDetails: true,
		PrintFormat:      PrintFormat80mm,
		ShowNotes:        true,
		PrintToken:       true,
	}
}
