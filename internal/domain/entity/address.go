// Package entity contains the core business objects of the project.
package entity

// Address is a shipping address saved on the user's account.
// Addresses are identified by their position in User.Addresses.
type Address struct {
	FullName   string `json:"fullName,omitempty"`   // Recipient name.
	Phone      string `json:"phone,omitempty"`      // Contact number for the courier.
	Street     string `json:"street,omitempty"`     // House number, street and area.
	City       string `json:"city,omitempty"`       // City or town.
	State      string `json:"state,omitempty"`      // State or province.
	PostalCode string `json:"postalCode,omitempty"` // Postal or PIN code.
	Country    string `json:"country,omitempty"`    // Country name.
	IsDefault  bool   `json:"isDefault,omitempty"`  // Whether this is the preferred address.
}
