package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	// Revisions only append fields, so no stored value has to be rewritten
	// when the schema is bumped.
	for rev := uint32(1); rev <= LatestRevision; rev++ {
		migration.MustRegister(rev, &State{}, migration.NoModification)
		migration.MustRegister(rev, &Account{}, migration.NoModification)
		migration.MustRegister(rev, &RoleSet{}, migration.NoModification)
	}
}

func (s *State) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if !coin.IsCC(s.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", s.Ticker))
	}
	errs = errors.AppendField(errs, "DepositFeeBps", validateBps(s.DepositFeeBps))
	errs = errors.AppendField(errs, "TotalPrincipal", validateBalance(s.TotalPrincipal))
	errs = errors.AppendField(errs, "YieldRateBps", validateBps(s.YieldRateBps))
	if s.YieldRegimeStart < 0 {
		errs = errors.AppendField(errs, "YieldRegimeStart", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	errs = errors.AppendField(errs, "WithdrawalDelaySeconds", validateDelay(s.WithdrawalDelaySeconds))
	if s.SeededRevision > LatestRevision {
		errs = errors.AppendField(errs, "SeededRevision", errors.Wrapf(errors.ErrInput, "revision %d is not supported", s.SeededRevision))
	}
	return errs
}

// seeded returns the highest revision whose fields were written. Records
// created before the marker existed were written by revision 1.
func (s *State) seeded() uint32 {
	if s.SeededRevision == 0 {
		return 1
	}
	return s.SeededRevision
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Principal", validateBalance(a.Principal))
	if a.LastYieldClaim < 0 {
		errs = errors.AppendField(errs, "LastYieldClaim", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	errs = errors.AppendField(errs, "PendingYield", validateBalance(a.PendingYield))
	if r := a.WithdrawalRequest; r != nil {
		errs = errors.AppendField(errs, "WithdrawalRequest", r.Validate())
	}
	return errs
}

// hasRequest returns true if a withdrawal request is waiting for execution.
func (a *Account) hasRequest() bool {
	return a.WithdrawalRequest != nil && a.WithdrawalRequest.Amount.IsPositive()
}

func (r *WithdrawalRequest) Validate() error {
	var errs error
	if err := r.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !r.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if r.RequestedAt < 0 {
		errs = errors.AppendField(errs, "RequestedAt", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	return errs
}

// validateBalance accepts a zero value coin without a ticker, which is how
// a balance that was never credited looks like.
func validateBalance(c coin.Coin) error {
	if c.IsZero() && c.Ticker == "" {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "must not be negative")
	}
	return nil
}

// NewAccountBucket returns a bucket for vault accounts keyed by the
// depositor address.
func NewAccountBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vaultacc", &Account{})
	return migration.NewModelBucket(packageName, b)
}

var _ orm.Model = (*RoleSet)(nil)

func (r *RoleSet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	seen := make(map[Role]struct{}, len(r.Roles))
	for _, role := range r.Roles {
		if err := role.Validate(); err != nil {
			errs = errors.AppendField(errs, "Roles", err)
			continue
		}
		if _, ok := seen[role]; ok {
			errs = errors.AppendField(errs, "Roles", errors.Wrapf(errors.ErrDuplicate, "role %s", role))
		}
		seen[role] = struct{}{}
	}
	return errs
}

// NewRoleBucket returns a bucket for role sets keyed by the address the
// roles are granted to.
func NewRoleBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vaultrole", &RoleSet{})
	return migration.NewModelBucket(packageName, b)
}

func newAccount() *Account {
	return &Account{Metadata: &weave.Metadata{Schema: 1}}
}
