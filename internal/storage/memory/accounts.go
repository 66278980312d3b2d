package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tealedge/portal/internal/domain"
	internal_errors "github.com/tealedge/portal/internal/errors"
)

// AccountLedger owns every registered account. Accounts are appended
// via SaveAccount and never mutated or deleted afterwards; email is the
// unique key and callers are expected to pass it already normalized.
type AccountLedger struct {
	mu      sync.RWMutex
	byEmail map[domain.Email]domain.Account
	order   []domain.Email // registration order, for stable listings
}

func NewAccountLedger() *AccountLedger {
	return &AccountLedger{byEmail: make(map[domain.Email]domain.Account)}
}

// SaveAccount stores the account and assigns its id. Returns a conflict
// error if the email is already taken, regardless of role.
func (l *AccountLedger) SaveAccount(account domain.Account) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byEmail[account.Email]; ok {
		return domain.Account{}, &internal_errors.Rejection{
			Kind:    internal_errors.DuplicateAccount,
			Message: fmt.Sprintf("An account with this email already exists as %s.", l.byEmail[account.Email].Role),
		}
	}

	account.Id = uuid.New()
	l.byEmail[account.Email] = account
	l.order = append(l.order, account.Email)
	return account, nil
}

// Account looks up by normalized email.
func (l *AccountLedger) Account(email domain.Email) (domain.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.byEmail[email]
	if !ok {
		return domain.Account{}, &internal_errors.Rejection{
			Kind:    internal_errors.AccountNotFound,
			Message: "No account found with this email. Please signup first.",
		}
	}
	return account, nil
}

// Accounts returns every account in registration order.
func (l *AccountLedger) Accounts() []domain.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Account, 0, len(l.order))
	for _, email := range l.order {
		out = append(out, l.byEmail[email])
	}
	return out
}

// CountByRole counts registered accounts holding the given role.
func (l *AccountLedger) CountByRole(role domain.Role) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, account := range l.byEmail {
		if account.Role == role {
			n++
		}
	}
	return n
}

func (l *AccountLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byEmail)
}
