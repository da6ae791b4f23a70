package vault

import (
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// RequestWithdrawal records the intent to withdraw amount once the
// withdrawal delay elapsed. A previous request of the depositor is
// replaced.
func (v *Vault) RequestWithdrawal(db weave.KVStore, now time.Time, depositor weave.Address, amount coin.Coin) error {
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 3)
	if err != nil {
		return err
	}
	if err := checkAmount(state, amount); err != nil {
		return err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return err
	}
	if !covers(acc.Principal, amount) {
		return errors.Wrapf(ErrInsufficientBalance, "principal %v, requested %v", acc.Principal, amount)
	}
	acc.WithdrawalRequest = &WithdrawalRequest{
		Amount:      amount,
		RequestedAt: weave.AsUnixTime(now),
	}
	return v.saveAccount(db, depositor, acc)
}

// ExecuteWithdrawal pays out the requested amount once the withdrawal
// delay elapsed. A vault configured with no delay does not execute
// requests at all.
func (v *Vault) ExecuteWithdrawal(db weave.KVStore, now time.Time, depositor weave.Address) (coin.Coin, error) {
	if err := v.guard.enter(); err != nil {
		return coin.Coin{}, err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 3)
	if err != nil {
		return coin.Coin{}, err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return coin.Coin{}, err
	}
	if !acc.hasRequest() {
		return coin.Coin{}, errors.Wrap(ErrNoPendingRequest, "request a withdrawal first")
	}
	if state.WithdrawalDelaySeconds == 0 {
		return coin.Coin{}, errors.Wrap(ErrDelayNotConfigured, "delayed withdrawals are disabled")
	}
	req := acc.WithdrawalRequest
	executable := req.RequestedAt.Add(time.Duration(state.WithdrawalDelaySeconds) * time.Second)
	if now.Before(executable.Time()) {
		return coin.Coin{}, errors.Wrapf(ErrDelayNotElapsed, "executable at %s", executable)
	}
	if !covers(acc.Principal, req.Amount) {
		return coin.Coin{}, errors.Wrapf(ErrInsufficientBalance, "principal %v, requested %v", acc.Principal, req.Amount)
	}
	amount := req.Amount
	if err := settleYield(state, acc, now); err != nil {
		return coin.Coin{}, err
	}
	acc.WithdrawalRequest = nil
	if err := v.release(db, state, depositor, acc, amount); err != nil {
		return coin.Coin{}, err
	}
	if err := v.custody.Credit(db, depositor, amount); err != nil {
		return coin.Coin{}, err
	}
	return amount, nil
}

// EmergencyWithdraw pays out the whole principal of the depositor at once,
// ignoring the withdrawal delay. Any pending request is dropped. Accrued
// yield stays claimable.
func (v *Vault) EmergencyWithdraw(db weave.KVStore, now time.Time, depositor weave.Address) (coin.Coin, error) {
	if err := v.guard.enter(); err != nil {
		return coin.Coin{}, err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 3)
	if err != nil {
		return coin.Coin{}, err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return coin.Coin{}, err
	}
	if !acc.Principal.IsPositive() {
		return coin.Coin{}, errors.Wrap(ErrInsufficientBalance, "no principal")
	}
	amount := acc.Principal
	if err := settleYield(state, acc, now); err != nil {
		return coin.Coin{}, err
	}
	acc.WithdrawalRequest = nil
	if err := v.release(db, state, depositor, acc, amount); err != nil {
		return coin.Coin{}, err
	}
	if err := v.custody.Credit(db, depositor, amount); err != nil {
		return coin.Coin{}, err
	}
	return amount, nil
}

// WithdrawalDelay returns the delay in seconds between a withdrawal request
// and its execution.
func (v *Vault) WithdrawalDelay(db weave.ReadOnlyKVStore) (uint32, error) {
	_, state, err := v.active(db, 3)
	if err != nil {
		return 0, err
	}
	return state.WithdrawalDelaySeconds, nil
}

// SetWithdrawalDelay changes the withdrawal delay. Requests already made
// are executable once the new delay elapsed since they were made.
func (v *Vault) SetWithdrawalDelay(db weave.KVStore, seconds uint32) error {
	if err := validateDelay(seconds); err != nil {
		return err
	}
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 3)
	if err != nil {
		return err
	}
	state.WithdrawalDelaySeconds = seconds
	return v.saveState(db, state)
}

// WithdrawalRequestOf returns the pending withdrawal request of the
// depositor or nil.
func (v *Vault) WithdrawalRequestOf(db weave.ReadOnlyKVStore, depositor weave.Address) (*WithdrawalRequest, error) {
	if _, _, err := v.active(db, 3); err != nil {
		return nil, err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return nil, err
	}
	if !acc.hasRequest() {
		return nil, nil
	}
	return acc.WithdrawalRequest, nil
}
