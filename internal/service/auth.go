package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"

	"github.com/tealedge/portal/internal/domain"
	"github.com/tealedge/portal/internal/errors"
	"github.com/tealedge/portal/internal/logger"
)

const minAdminPasswordLen = 10

type AuthService interface {
	Register(name string, email domain.Email, password, confirmPassword domain.Password, role domain.Role, adminKey string) (domain.Account, error)
	Login(email domain.Email, password domain.Password, selectedRole domain.Role) (domain.Account, string, error)
	Account(email domain.Email) (domain.Account, error)
	TotalByRole(role domain.Role) int
}

type AccountStorage interface {
	SaveAccount(account domain.Account) (domain.Account, error)
	Account(email domain.Email) (domain.Account, error)
	CountByRole(role domain.Role) int
}

type Jwt interface {
	NewToken(account domain.Account) (string, error)
}

type Auth struct {
	storage          AccountStorage
	jwt              Jwt
	adminSignupKey   string
	adminEmailDomain string
	namePolicy       *bluemonday.Policy
}

func NewAuth(storage AccountStorage, jwt Jwt, adminSignupKey, adminEmailDomain string) *Auth {
	return &Auth{
		storage:          storage,
		jwt:              jwt,
		adminSignupKey:   adminSignupKey,
		adminEmailDomain: adminEmailDomain,
		namePolicy:       bluemonday.StrictPolicy(),
	}
}

// Register validates a signup and appends the account to the ledger.
// The first failing rule wins; a rejection leaves the ledger untouched.
func (a *Auth) Register(name string, email domain.Email, password, confirmPassword domain.Password, role domain.Role, adminKey string) (domain.Account, error) {
	name = strings.TrimSpace(a.namePolicy.Sanitize(name))
	email = domain.NormalizeEmail(email)
	trimmedPassword := strings.TrimSpace(password)

	if name == "" || email == "" || trimmedPassword == "" || !role.Valid() {
		return domain.Account{}, &errors.Rejection{
			Kind:    errors.IncompleteFields,
			Message: "Please complete all required fields.",
		}
	}

	// confirm compares the raw inputs, before trimming
	if password != confirmPassword {
		return domain.Account{}, &errors.Rejection{
			Kind:    errors.PasswordMismatch,
			Message: "Password and confirm password must match.",
		}
	}

	if existing, err := a.storage.Account(email); err == nil {
		if role == domain.RoleStudent && existing.Role == domain.RoleStudent {
			return domain.Account{}, &errors.Rejection{
				Kind:    errors.DuplicateAccount,
				Message: "This student is already registered. Please login instead.",
			}
		}
		return domain.Account{}, &errors.Rejection{
			Kind:    errors.DuplicateAccount,
			Message: fmt.Sprintf("An account with this email already exists as %s.", existing.Role),
		}
	}

	if role == domain.RoleAdmin {
		if adminKey != a.adminSignupKey {
			return domain.Account{}, &errors.Rejection{
				Kind:    errors.InvalidAdminKey,
				Message: "Invalid admin signup key.",
			}
		}
		if a.adminEmailDomain != "" && !strings.HasSuffix(email, a.adminEmailDomain) {
			return domain.Account{}, &errors.Rejection{
				Kind:    errors.WeakAdminCredential,
				Message: "Admin accounts must use an organizational email.",
			}
		}
		if !isStrongPassword(trimmedPassword) {
			return domain.Account{}, &errors.Rejection{
				Kind:    errors.WeakAdminCredential,
				Message: fmt.Sprintf("Admin password needs at least %d characters with lower, upper, digit and symbol.", minAdminPasswordLen),
			}
		}
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.Account{}, err
	}

	account, err := a.storage.SaveAccount(domain.Account{
		Name:     name,
		Email:    email,
		PassHash: string(passHash),
		Role:     role,
	})
	if err != nil {
		return domain.Account{}, err
	}

	logger.Log.Info("account registered", "email", email, "role", role)
	return account, nil
}

// Login checks the credentials against the ledger and returns the
// account plus a signed access token. The selected role must equal the
// stored role even when the password is correct.
func (a *Auth) Login(email domain.Email, password domain.Password, selectedRole domain.Role) (domain.Account, string, error) {
	email = domain.NormalizeEmail(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return domain.Account{}, "", &errors.Rejection{
			Kind:    errors.IncompleteFields,
			Message: "Please enter both email and password.",
		}
	}

	account, err := a.storage.Account(email)
	if err != nil {
		return domain.Account{}, "", err
	}

	if account.Role != selectedRole {
		return domain.Account{}, "", &errors.Rejection{
			Kind:    errors.RoleMismatch,
			Message: fmt.Sprintf("This account is %s. Please pick %s role.", account.Role, account.Role),
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PassHash), []byte(password)); err != nil {
		return domain.Account{}, "", &errors.Rejection{
			Kind:    errors.IncorrectPassword,
			Message: "Incorrect password.",
		}
	}

	token, err := a.jwt.NewToken(account)
	if err != nil {
		logger.Log.Error("failed to create access token", "email", email, "error", err)
		return domain.Account{}, "", err
	}

	return account, token, nil
}

func (a *Auth) Account(email domain.Email) (domain.Account, error) {
	return a.storage.Account(domain.NormalizeEmail(email))
}

func (a *Auth) TotalByRole(role domain.Role) int {
	return a.storage.CountByRole(role)
}

func isStrongPassword(password domain.Password) bool {
	if len(password) < minAdminPasswordLen {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
