package mem

import (
	"errors"
	"sort"
	"sync"

	"github.com/goserg/ratingtracker/internal/domain"
	"github.com/goserg/ratingtracker/internal/normalize"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already exists")
)

// Cache holds accounts by normalized name. It is the single writer for every
// account it holds: all mutations go through Update.
type Cache struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

func New() *Cache {
	return &Cache{
		accounts: make(map[string]*domain.Account),
	}
}

func (c *Cache) Add(account *domain.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := normalize.Name(account.Name())
	if _, ok := c.accounts[name]; ok {
		return ErrDuplicateAccount
	}
	c.accounts[name] = account
	c.order = append(c.order, name)
	return nil
}

func (c *Cache) GetAccountByName(name string) (domain.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	account, ok := c.accounts[normalize.Name(name)]
	if !ok {
		return domain.Snapshot{}, false
	}
	return account.Snapshot(), true
}

// Update runs fn on the named account under the write lock.
func (c *Cache) Update(name string, fn func(*domain.Account)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	account, ok := c.accounts[normalize.Name(name)]
	if !ok {
		return ErrAccountNotFound
	}
	fn(account)
	return nil
}

// List returns accounts in the order they were added.
func (c *Cache) List() []domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	accounts := make([]domain.Snapshot, 0, len(c.order))
	for _, name := range c.order {
		accounts = append(accounts, c.accounts[name].Snapshot())
	}
	return accounts
}

// GetRatings returns accounts ordered by rating, best first.
func (c *Cache) GetRatings() []domain.Snapshot {
	accounts := c.List()
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Rating > accounts[j].Rating
	})
	return accounts
}
