package admins

import (
	"fmt"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// RoleType represents a back-office staff role
type RoleType string

const (
	RoleSuperAdmin RoleType = "super_admin" // Can manage other admin accounts
	RoleManager    RoleType = "manager"     // Day-to-day operations
	RoleViewer     RoleType = "viewer"      // Read-only access
)

// StatusType is the account status shown on the admin list page
type StatusType string

const (
	StatusActive  StatusType = "정상"
	StatusBlocked StatusType = "차단"
)

type Admin struct {
	ID           string     `json:"id,omitempty"`          // Unique identifier for the account
	Email        string     `json:"email,omitempty"`       // Login email
	Name         string     `json:"name,omitempty"`        // Display name
	Team         string     `json:"team,omitempty"`        // Department / team label
	PasswordHash string     `json:"-"`                     // Hashed password - never serialize
	Role         RoleType   `json:"role,omitempty"`        // Staff role
	Status       StatusType `json:"status,omitempty"`      // Account status
	DateJoined   time.Time  `json:"date_joined,omitempty"` // When the account was created
	LastLogin    time.Time  `json:"last_login,omitempty"`  // Last successful login
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

func (a *Admin) IsBlocked() bool {
	return a.Status == StatusBlocked
}
