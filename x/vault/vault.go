package vault

import (
	"sync/atomic"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

// Vault is the ledger controller. All handlers of this extension share a
// single instance so that the reentrancy guard covers every mutation.
type Vault struct {
	accounts orm.ModelBucket
	roles    orm.ModelBucket
	schemas  *migration.SchemaBucket
	custody  Custodian
	guard    *guard
}

// NewVault returns a controller that moves funds using given custodian.
func NewVault(custody Custodian) *Vault {
	return &Vault{
		accounts: NewAccountBucket(),
		roles:    NewRoleBucket(),
		schemas:  migration.NewSchemaBucket(),
		custody:  custody,
		guard:    &guard{},
	}
}

// guard is set for the whole duration of a mutating operation, including
// the custody call. A custodian calling back into the vault is rejected.
type guard struct {
	active int32
}

func (g *guard) enter() error {
	if !atomic.CompareAndSwapInt32(&g.active, 0, 1) {
		return errors.Wrap(ErrReentrant, "vault operation in progress")
	}
	return nil
}

func (g *guard) exit() {
	atomic.StoreInt32(&g.active, 0)
}

// loadState returns the vault state migrated to the current revision.
func (v *Vault) loadState(db weave.ReadOnlyKVStore) (*State, error) {
	var s State
	if err := gconf.Load(db, packageName, &s); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(ErrRevision, "vault is not initialized")
		}
		return nil, errors.Wrap(err, "load state")
	}
	if err := migration.Migrate(db, packageName, &s); err != nil {
		return nil, errors.Wrap(err, "migrate state")
	}
	return &s, nil
}

func (v *Vault) saveState(db weave.KVStore, s *State) error {
	if err := gconf.Save(db, packageName, s); err != nil {
		return errors.Wrap(err, "save state")
	}
	return nil
}

// hasState returns true if the revision 1 state was already written.
func (v *Vault) hasState(db weave.ReadOnlyKVStore) (bool, error) {
	var s State
	switch err := gconf.Load(db, packageName, &s); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "load state")
	}
}

// loadAccount returns the account of given depositor. An account that was
// never written is returned zeroed.
func (v *Vault) loadAccount(db weave.ReadOnlyKVStore, depositor weave.Address) (*Account, error) {
	var a Account
	switch err := v.accounts.One(db, depositor, &a); {
	case err == nil:
		return &a, nil
	case errors.ErrNotFound.Is(err):
		return newAccount(), nil
	default:
		return nil, errors.Wrap(err, "load account")
	}
}

func (v *Vault) saveAccount(db weave.KVStore, depositor weave.Address, a *Account) error {
	if _, err := v.accounts.Put(db, depositor, a); err != nil {
		return errors.Wrap(err, "save account")
	}
	return nil
}
