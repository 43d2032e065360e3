// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

var forbiddenPasswordWords = []string{"password", "admin", "storefront", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

func defaultStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   false,
	}
}

// NewBcryptHasher builds a hasher from the auth and password strength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:     bcrypt.DefaultCost,
		strength: defaultStrength(),
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		hasher.strength = *cfg.PasswordStrength
	}

	return hasher
}

// NewBcryptHasherWithCost is used by tests that need a fast hash.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, strength: defaultStrength()}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	rules := h.strength
	length := utf8.RuneCountInString(password)

	if rules.MinLength > 0 && length < rules.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at least %d characters long", rules.MinLength))
	}
	// bcrypt only reads the first 72 bytes
	if rules.MaxLength > 0 && (length > rules.MaxLength || len(password) > 72) {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at most %d characters long", min(rules.MaxLength, 72)))
	}
	if rules.RequireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if rules.RequireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if rules.RequireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if rules.RequireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}
	if h.containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordStrength.WithDetails("contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
