// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the shopper's account as reported by the backend profile endpoint.
type User struct {
	ID         string    `json:"_id"`                 // The backend's user identifier.
	Name       string    `json:"name"`                // Display name.
	Email      string    `json:"email,omitempty"`     // Login email, empty for phone-only accounts.
	Phone      string    `json:"phone,omitempty"`     // Phone number used for OTP login.
	Role       Role      `json:"role,omitempty"`      // Account role.
	IsVerified bool      `json:"isVerified"`          // Whether the email address has been verified.
	Addresses  []Address `json:"addresses,omitempty"` // Saved shipping addresses, in backend order.
}

// Minimal returns the subset of the user kept in the local auth snapshot.
func (u *User) Minimal() *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}

// UnverifiedUser identifies an account whose login was refused until its email is verified.
type UnverifiedUser struct {
	ID    string `json:"_id"`
	Email string `json:"email,omitempty"`
}
