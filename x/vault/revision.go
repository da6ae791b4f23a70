package vault

import (
	"fmt"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

const (
	packageName = "vault"

	// LatestRevision is the highest revision this code can run.
	LatestRevision = 3
)

// Revision returns the active revision of the vault or zero if the vault
// was never initialized.
func (v *Vault) Revision(db weave.ReadOnlyKVStore) (uint32, error) {
	switch ver, err := v.schemas.CurrentSchema(db, packageName); {
	case err == nil:
		return ver, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "current schema")
	}
}

// ImplementationVersion returns the tag of the active revision, for
// example "V2".
func (v *Vault) ImplementationVersion(db weave.ReadOnlyKVStore) (string, error) {
	rev, err := v.Revision(db)
	if err != nil {
		return "", err
	}
	if rev == 0 {
		return "", errors.Wrap(ErrRevision, "vault is not initialized")
	}
	return fmt.Sprintf("V%d", rev), nil
}

// active returns the current revision and the state, or an error if the
// revision is lower than required.
func (v *Vault) active(db weave.ReadOnlyKVStore, required uint32) (uint32, *State, error) {
	rev, err := v.Revision(db)
	if err != nil {
		return 0, nil, err
	}
	if rev < required {
		return rev, nil, errors.Wrapf(ErrRevision, "revision %d required, active %d", required, rev)
	}
	state, err := v.loadState(db)
	if err != nil {
		return rev, nil, err
	}
	if seeded := state.seeded(); seeded != rev {
		return rev, nil, errors.Wrapf(ErrRevision, "revision %d is active but state was seeded for revision %d", rev, seeded)
	}
	return rev, state, nil
}

// bump activates the revision following the current one.
func (v *Vault) bump(db weave.KVStore, to uint32) error {
	s := migration.Schema{
		Metadata: &weave.Metadata{Schema: 1},
		Pkg:      packageName,
		Version:  to,
	}
	if _, err := v.schemas.Create(db, &s); err != nil {
		return errors.Wrapf(err, "activate revision %d", to)
	}
	return nil
}

// Initialize activates revision 1. The admin is granted every role.
func (v *Vault) Initialize(db weave.KVStore, ticker string, admin weave.Address, feeBps uint32) error {
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", ticker)
	}
	if err := admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if err := validateBps(feeBps); err != nil {
		return err
	}
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	rev, err := v.Revision(db)
	if err != nil {
		return err
	}
	switch rev {
	case 0:
		if err := v.bump(db, 1); err != nil {
			return err
		}
	case 1:
		// The schema can be declared in the genesis. State must not exist.
		switch ok, err := v.hasState(db); {
		case err != nil:
			return err
		case ok:
			return errors.Wrap(ErrAlreadyInitialized, "revision 1")
		}
	default:
		return errors.Wrapf(ErrAlreadyInitialized, "active revision %d", rev)
	}

	state := State{
		Metadata:       &weave.Metadata{Schema: 1},
		Ticker:         ticker,
		DepositFeeBps:  feeBps,
		TotalPrincipal: zeroCoin(ticker),
		SeededRevision: 1,
	}
	if err := v.saveState(db, &state); err != nil {
		return err
	}
	for _, role := range []Role{RoleAdmin, RoleUpgrader, RolePauser} {
		if err := v.grant(db, admin, role); err != nil {
			return errors.Wrapf(err, "grant %s", role)
		}
	}
	return nil
}

// InitializeV2 activates revision 2. Accounts created before the yield
// accrual was introduced earn yield starting at now.
func (v *Vault) InitializeV2(db weave.KVStore, now time.Time, yieldRateBps uint32) error {
	if err := validateBps(yieldRateBps); err != nil {
		return err
	}
	return v.upgrade(db, 2, func(s *State) {
		s.YieldRateBps = yieldRateBps
		s.YieldRegimeStart = weave.AsUnixTime(now)
	})
}

// InitializeV3 activates revision 3.
func (v *Vault) InitializeV3(db weave.KVStore, delaySeconds uint32) error {
	if err := validateDelay(delaySeconds); err != nil {
		return err
	}
	return v.upgrade(db, 3, func(s *State) {
		s.WithdrawalDelaySeconds = delaySeconds
	})
}

// upgrade activates given revision and seeds the fields it introduces.
// Fields of earlier revisions are never written.
func (v *Vault) upgrade(db weave.KVStore, to uint32, seed func(*State)) error {
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	rev, err := v.Revision(db)
	if err != nil {
		return err
	}
	if rev != to-1 {
		return errors.Wrapf(ErrAlreadyInitialized, "revision %d cannot be activated from revision %d", to, rev)
	}
	if err := v.bump(db, to); err != nil {
		return err
	}
	state, err := v.loadState(db)
	if err != nil {
		return err
	}
	seed(state)
	state.SeededRevision = to
	return v.saveState(db, state)
}

// RegisterSchemaRoutes registers the weave schema upgrade handler. It
// refuses to bump the vault package. A vault revision is activated only by
// its initialize message, which seeds the fields the revision adds.
func RegisterSchemaRoutes(r weave.Registry, auth x.Authenticator) {
	migration.RegisterRoutes(&schemaUpgradeRegistry{Registry: r}, auth)
}

type schemaUpgradeRegistry struct {
	weave.Registry
}

func (r *schemaUpgradeRegistry) Handle(m weave.Msg, h weave.Handler) {
	if _, ok := m.(*migration.UpgradeSchemaMsg); ok {
		h = &schemaUpgradeGuard{next: h}
	}
	r.Registry.Handle(m, h)
}

type schemaUpgradeGuard struct {
	next weave.Handler
}

func (h *schemaUpgradeGuard) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := rejectVaultUpgrade(tx); err != nil {
		return nil, err
	}
	return h.next.Check(ctx, db, tx)
}

func (h *schemaUpgradeGuard) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := rejectVaultUpgrade(tx); err != nil {
		return nil, err
	}
	return h.next.Deliver(ctx, db, tx)
}

func rejectVaultUpgrade(tx weave.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "load msg")
	}
	if m, ok := msg.(*migration.UpgradeSchemaMsg); ok && m.Pkg == packageName {
		return errors.Wrap(ErrRevision, "vault revisions are activated by the initialize messages")
	}
	return nil
}

// RevisionRoutingHandler selects the handler of the active revision. The
// first element serves revision 1. A nil element marks a revision that
// does not support the message.
type RevisionRoutingHandler struct {
	vault    *Vault
	handlers []weave.Handler
}

var _ weave.Handler = (*RevisionRoutingHandler)(nil)

// sinceRevision returns a routing handler that uses h for given and every
// later revision.
func sinceRevision(v *Vault, rev uint32, h weave.Handler) *RevisionRoutingHandler {
	handlers := make([]weave.Handler, LatestRevision)
	for i := rev - 1; i < LatestRevision; i++ {
		handlers[i] = h
	}
	return &RevisionRoutingHandler{vault: v, handlers: handlers}
}

func (h *RevisionRoutingHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	handler, err := h.selectHandler(db)
	if err != nil {
		return nil, err
	}
	return handler.Check(ctx, db, tx)
}

func (h *RevisionRoutingHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	handler, err := h.selectHandler(db)
	if err != nil {
		return nil, err
	}
	return handler.Deliver(ctx, db, tx)
}

func (h *RevisionRoutingHandler) selectHandler(db weave.ReadOnlyKVStore) (weave.Handler, error) {
	rev, err := h.vault.Revision(db)
	if err != nil {
		return nil, err
	}
	if rev == 0 {
		return nil, errors.Wrap(ErrRevision, "vault is not initialized")
	}
	if int(rev) > len(h.handlers) {
		return nil, errors.Wrapf(ErrRevision, "revision %d is not supported", rev)
	}
	handler := h.handlers[rev-1]
	if handler == nil {
		return nil, errors.Wrapf(ErrRevision, "message not supported in revision %d", rev)
	}
	return handler, nil
}
