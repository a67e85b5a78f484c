package model

import "time"

// Account roles. Exactly one role per account; combinations are not
// supported. The role decides which panels and routes the account may
// reach (see the guard package).
const (
	RoleCustomer     = "CUSTOMER"
	RoleHotelAdmin   = "HOTEL_ADMIN"
	RoleParkingAdmin = "PARKING_ADMIN"
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleSupport      = "SUPPORT"
)

// ValidRole reports whether s is one of the known role names.
func ValidRole(s string) bool {
	switch s {
	case RoleCustomer, RoleHotelAdmin, RoleParkingAdmin, RoleSuperAdmin, RoleSupport:
		return true
	}
	return false
}

// Account represents a row in the `accounts` table. Passwords are stored
// only as bcrypt hashes. Accounts are created at registration (always
// CUSTOMER) or by a super admin, who may assign any role.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Email        – unique email address, stored lowercase.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of the Role* constants.
//  Phone        – optional phone number.
//  Address      – optional free-form address.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Account struct {
	ID           uint64    // accounts.id
	Name         string    // accounts.name
	Email        string    // accounts.email
	PasswordHash string    // accounts.password_hash
	Role         string    // accounts.role
	Phone        string    // accounts.phone
	Address      string    // accounts.address
	CreatedAt    time.Time // accounts.created_at
	UpdatedAt    time.Time // accounts.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the raw token is persisted.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	AccountID uint64     // refresh_tokens.account_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
