package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	tagAction           = "vault.action"
	tagEmergencyAccount = "vault.emergency.account"
	tagEmergencyAmount  = "vault.emergency.amount"
)

// RegisterQuery registers vault buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewAccountBucket().Register("vaultaccounts", qr)
	NewRoleBucket().Register("vaultroles", qr)
}

// RegisterRoutes registers handlers for all vault messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, v *Vault) {
	// Revision transitions are not routed by revision. Each of them checks
	// the revision it upgrades from.
	r.Handle(&InitializeMsg{}, &initializeHandler{auth: auth, vault: v})
	r.Handle(&InitializeV2Msg{}, &initializeV2Handler{auth: auth, vault: v})
	r.Handle(&InitializeV3Msg{}, &initializeV3Handler{auth: auth, vault: v})

	since := func(rev uint32, h weave.Handler) weave.Handler {
		return sinceRevision(v, rev, migration.SchemaMigratingHandler(packageName, h))
	}
	r.Handle(&GrantRoleMsg{}, since(1, &grantRoleHandler{auth: auth, vault: v}))
	r.Handle(&RevokeRoleMsg{}, since(1, &revokeRoleHandler{auth: auth, vault: v}))
	r.Handle(&SetDepositFeeMsg{}, since(1, &setDepositFeeHandler{auth: auth, vault: v}))
	r.Handle(&PauseDepositsMsg{}, since(1, &pauseHandler{auth: auth, vault: v, paused: true}))
	r.Handle(&UnpauseDepositsMsg{}, since(1, &pauseHandler{auth: auth, vault: v, paused: false}))
	r.Handle(&DepositMsg{}, since(1, &depositHandler{auth: auth, vault: v}))
	r.Handle(&WithdrawMsg{}, since(1, &withdrawHandler{auth: auth, vault: v}))
	r.Handle(&SetYieldRateMsg{}, since(2, &setYieldRateHandler{auth: auth, vault: v}))
	r.Handle(&ClaimYieldMsg{}, since(2, &claimYieldHandler{auth: auth, vault: v}))
	r.Handle(&SetWithdrawalDelayMsg{}, since(3, &setWithdrawalDelayHandler{auth: auth, vault: v}))
	r.Handle(&RequestWithdrawalMsg{}, since(3, &requestWithdrawalHandler{auth: auth, vault: v}))
	r.Handle(&ExecuteWithdrawalMsg{}, since(3, &executeWithdrawalHandler{auth: auth, vault: v}))
	r.Handle(&EmergencyWithdrawMsg{}, since(3, &emergencyWithdrawHandler{auth: auth, vault: v}))
}

func tags(msg weave.Msg, extra ...common.KVPair) []common.KVPair {
	return append([]common.KVPair{{Key: []byte(tagAction), Value: []byte(msg.Path())}}, extra...)
}

// moved returns the result of an operation that moved given amount.
func moved(msg weave.Msg, amount coin.Coin, extra ...common.KVPair) (*weave.DeliverResult, error) {
	data, err := amount.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal amount")
	}
	return &weave.DeliverResult{Data: data, Tags: tags(msg, extra...)}, nil
}

type initializeHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *initializeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *initializeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.Initialize(db, msg.Ticker, msg.Admin, msg.DepositFeeBps); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault revision activated",
		"revision", 1, "ticker", msg.Ticker, "admin", msg.Admin.String())
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *initializeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeMsg, error) {
	var msg InitializeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	admin, err := migration.CurrentAdmin(db)
	if err != nil {
		return nil, errors.Wrap(err, "migration admin")
	}
	if !h.auth.HasAddress(ctx, admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "migration admin signature required")
	}
	return &msg, nil
}

type initializeV2Handler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *initializeV2Handler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *initializeV2Handler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if err := h.vault.InitializeV2(db, now, msg.YieldRateBps); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault revision activated",
		"revision", 2, "yield_rate_bps", msg.YieldRateBps)
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *initializeV2Handler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeV2Msg, error) {
	var msg InitializeV2Msg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleUpgrader); err != nil {
		return nil, err
	}
	return &msg, nil
}

type initializeV3Handler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *initializeV3Handler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *initializeV3Handler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.InitializeV3(db, msg.WithdrawalDelaySeconds); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault revision activated",
		"revision", 3, "withdrawal_delay_seconds", msg.WithdrawalDelaySeconds)
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *initializeV3Handler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*InitializeV3Msg, error) {
	var msg InitializeV3Msg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleUpgrader); err != nil {
		return nil, err
	}
	return &msg, nil
}

type grantRoleHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *grantRoleHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *grantRoleHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.GrantRole(db, msg.Address, msg.Role); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault role granted", "address", msg.Address.String(), "role", msg.Role.String())
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *grantRoleHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*GrantRoleMsg, error) {
	var msg GrantRoleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleAdmin); err != nil {
		return nil, err
	}
	return &msg, nil
}

type revokeRoleHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *revokeRoleHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *revokeRoleHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.RevokeRole(db, msg.Address, msg.Role); err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault role revoked", "address", msg.Address.String(), "role", msg.Role.String())
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *revokeRoleHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeRoleMsg, error) {
	var msg RevokeRoleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleAdmin); err != nil {
		return nil, err
	}
	return &msg, nil
}

type setDepositFeeHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *setDepositFeeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *setDepositFeeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.SetDepositFee(db, msg.DepositFeeBps); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *setDepositFeeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetDepositFeeMsg, error) {
	var msg SetDepositFeeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleAdmin); err != nil {
		return nil, err
	}
	return &msg, nil
}

// pauseHandler serves both pause and unpause messages.
type pauseHandler struct {
	auth   x.Authenticator
	vault  *Vault
	paused bool
}

func (h *pauseHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *pauseHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if h.paused {
		err = h.vault.PauseDeposits(db)
	} else {
		err = h.vault.UnpauseDeposits(db)
	}
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault deposits gate changed", "paused", h.paused)
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *pauseHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Msg, error) {
	var msg weave.Msg = &UnpauseDepositsMsg{}
	if h.paused {
		msg = &PauseDepositsMsg{}
	}
	if err := weave.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RolePauser); err != nil {
		return nil, err
	}
	return msg, nil
}

type depositHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	net, err := h.vault.Deposit(db, now, msg.Depositor, msg.Amount)
	if err != nil {
		return nil, err
	}
	return moved(msg, net)
}

func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature required")
	}
	return &msg, nil
}

type withdrawHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if err := h.vault.Withdraw(db, now, msg.Depositor, msg.Amount); err != nil {
		return nil, err
	}
	return moved(msg, msg.Amount)
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WithdrawMsg, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature required")
	}
	return &msg, nil
}

type setYieldRateHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *setYieldRateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *setYieldRateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.SetYieldRate(db, msg.YieldRateBps); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *setYieldRateHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetYieldRateMsg, error) {
	var msg SetYieldRateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleAdmin); err != nil {
		return nil, err
	}
	return &msg, nil
}

type claimYieldHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *claimYieldHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *claimYieldHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	paid, err := h.vault.ClaimYield(db, now, msg.Depositor)
	if err != nil {
		return nil, err
	}
	return moved(msg, paid)
}

func (h *claimYieldHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ClaimYieldMsg, error) {
	var msg ClaimYieldMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature required")
	}
	return &msg, nil
}

type setWithdrawalDelayHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *setWithdrawalDelayHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *setWithdrawalDelayHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.SetWithdrawalDelay(db, msg.WithdrawalDelaySeconds); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *setWithdrawalDelayHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetWithdrawalDelayMsg, error) {
	var msg SetWithdrawalDelayMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.vault.Authorize(ctx, h.auth, db, RoleAdmin); err != nil {
		return nil, err
	}
	return &msg, nil
}

type requestWithdrawalHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *requestWithdrawalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *requestWithdrawalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if err := h.vault.RequestWithdrawal(db, now, msg.Depositor, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: tags(msg)}, nil
}

func (h *requestWithdrawalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RequestWithdrawalMsg, error) {
	var msg RequestWithdrawalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature required")
	}
	return &msg, nil
}

type executeWithdrawalHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *executeWithdrawalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *executeWithdrawalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	paid, err := h.vault.ExecuteWithdrawal(db, now, msg.Depositor)
	if err != nil {
		return nil, err
	}
	return moved(msg, paid)
}

func (h *executeWithdrawalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ExecuteWithdrawalMsg, error) {
	var msg ExecuteWithdrawalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature required")
	}
	return &msg, nil
}

type emergencyWithdrawHandler struct {
	auth  x.Authenticator
	vault *Vault
}

func (h *emergencyWithdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *emergencyWithdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	paid, err := h.vault.EmergencyWithdraw(db, now, msg.Depositor)
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault emergency withdrawal",
		"account", msg.Depositor.String(), "amount", paid.String())
	return moved(msg, paid,
		common.KVPair{Key: []byte(tagEmergencyAccount), Value: []byte(msg.Depositor.String())},
		common.KVPair{Key: []byte(tagEmergencyAmount), Value: []byte(paid.String())},
	)
}

func (h *emergencyWithdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*EmergencyWithdrawMsg, error) {
	var msg EmergencyWithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature required")
	}
	return &msg, nil
}
