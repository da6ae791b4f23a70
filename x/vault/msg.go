package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	for rev := uint32(1); rev <= LatestRevision; rev++ {
		migration.MustRegister(rev, &InitializeMsg{}, migration.NoModification)
		migration.MustRegister(rev, &InitializeV2Msg{}, migration.NoModification)
		migration.MustRegister(rev, &InitializeV3Msg{}, migration.NoModification)
		migration.MustRegister(rev, &GrantRoleMsg{}, migration.NoModification)
		migration.MustRegister(rev, &RevokeRoleMsg{}, migration.NoModification)
		migration.MustRegister(rev, &SetDepositFeeMsg{}, migration.NoModification)
		migration.MustRegister(rev, &PauseDepositsMsg{}, migration.NoModification)
		migration.MustRegister(rev, &UnpauseDepositsMsg{}, migration.NoModification)
		migration.MustRegister(rev, &DepositMsg{}, migration.NoModification)
		migration.MustRegister(rev, &WithdrawMsg{}, migration.NoModification)
		migration.MustRegister(rev, &SetYieldRateMsg{}, migration.NoModification)
		migration.MustRegister(rev, &ClaimYieldMsg{}, migration.NoModification)
		migration.MustRegister(rev, &SetWithdrawalDelayMsg{}, migration.NoModification)
		migration.MustRegister(rev, &RequestWithdrawalMsg{}, migration.NoModification)
		migration.MustRegister(rev, &ExecuteWithdrawalMsg{}, migration.NoModification)
		migration.MustRegister(rev, &EmergencyWithdrawMsg{}, migration.NoModification)
	}
}

var _ weave.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string {
	return "vault/initialize"
}

func (m *InitializeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", m.Ticker))
	}
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	errs = errors.AppendField(errs, "DepositFeeBps", validateBps(m.DepositFeeBps))
	return errs
}

var _ weave.Msg = (*InitializeV2Msg)(nil)

func (InitializeV2Msg) Path() string {
	return "vault/initialize_v2"
}

func (m *InitializeV2Msg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "YieldRateBps", validateBps(m.YieldRateBps))
	return errs
}

var _ weave.Msg = (*InitializeV3Msg)(nil)

func (InitializeV3Msg) Path() string {
	return "vault/initialize_v3"
}

func (m *InitializeV3Msg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "WithdrawalDelaySeconds", validateDelay(m.WithdrawalDelaySeconds))
	return errs
}

var _ weave.Msg = (*GrantRoleMsg)(nil)

func (GrantRoleMsg) Path() string {
	return "vault/grant_role"
}

func (m *GrantRoleMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	errs = errors.AppendField(errs, "Role", m.Role.Validate())
	return errs
}

var _ weave.Msg = (*RevokeRoleMsg)(nil)

func (RevokeRoleMsg) Path() string {
	return "vault/revoke_role"
}

func (m *RevokeRoleMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	errs = errors.AppendField(errs, "Role", m.Role.Validate())
	return errs
}

var _ weave.Msg = (*SetDepositFeeMsg)(nil)

func (SetDepositFeeMsg) Path() string {
	return "vault/set_deposit_fee"
}

func (m *SetDepositFeeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "DepositFeeBps", validateBps(m.DepositFeeBps))
	return errs
}

var _ weave.Msg = (*PauseDepositsMsg)(nil)

func (PauseDepositsMsg) Path() string {
	return "vault/pause_deposits"
}

func (m *PauseDepositsMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

var _ weave.Msg = (*UnpauseDepositsMsg)(nil)

func (UnpauseDepositsMsg) Path() string {
	return "vault/unpause_deposits"
}

func (m *UnpauseDepositsMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

var _ weave.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "vault/deposit"
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

var _ weave.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "vault/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

var _ weave.Msg = (*SetYieldRateMsg)(nil)

func (SetYieldRateMsg) Path() string {
	return "vault/set_yield_rate"
}

func (m *SetYieldRateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "YieldRateBps", validateBps(m.YieldRateBps))
	return errs
}

var _ weave.Msg = (*ClaimYieldMsg)(nil)

func (ClaimYieldMsg) Path() string {
	return "vault/claim_yield"
}

func (m *ClaimYieldMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	return errs
}

var _ weave.Msg = (*SetWithdrawalDelayMsg)(nil)

func (SetWithdrawalDelayMsg) Path() string {
	return "vault/set_withdrawal_delay"
}

func (m *SetWithdrawalDelayMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "WithdrawalDelaySeconds", validateDelay(m.WithdrawalDelaySeconds))
	return errs
}

var _ weave.Msg = (*RequestWithdrawalMsg)(nil)

func (RequestWithdrawalMsg) Path() string {
	return "vault/request_withdrawal"
}

func (m *RequestWithdrawalMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

var _ weave.Msg = (*ExecuteWithdrawalMsg)(nil)

func (ExecuteWithdrawalMsg) Path() string {
	return "vault/execute_withdrawal"
}

func (m *ExecuteWithdrawalMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	return errs
}

var _ weave.Msg = (*EmergencyWithdrawMsg)(nil)

func (EmergencyWithdrawMsg) Path() string {
	return "vault/emergency_withdraw"
}

func (m *EmergencyWithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	return errs
}

func validateAmount(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be greater than zero")
	}
	return nil
}

func validateBps(bps uint32) error {
	if bps > MaxBps {
		return errors.Wrapf(errors.ErrInput, "%d bps exceeds 10000", bps)
	}
	return nil
}

func validateDelay(seconds uint32) error {
	if seconds > MaxWithdrawalDelay {
		return errors.Wrapf(errors.ErrInput, "%d seconds exceeds 30 days", seconds)
	}
	return nil
}
