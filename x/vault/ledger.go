package vault

import (
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// checkAmount returns an error unless amount is a positive value of the
// vault asset.
func checkAmount(s *State, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if amount.Ticker != s.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "vault accepts only %s", s.Ticker)
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	return nil
}

// Deposit moves amount from the depositor wallet into the custody and
// credits the depositor principal with the amount net of the deposit fee.
// The credited principal is returned.
func (v *Vault) Deposit(db weave.KVStore, now time.Time, depositor weave.Address, amount coin.Coin) (coin.Coin, error) {
	if err := v.guard.enter(); err != nil {
		return coin.Coin{}, err
	}
	defer v.guard.exit()

	rev, state, err := v.active(db, 1)
	if err != nil {
		return coin.Coin{}, err
	}
	if state.Paused {
		return coin.Coin{}, errors.Wrap(ErrPaused, "deposits are paused")
	}
	if err := checkAmount(state, amount); err != nil {
		return coin.Coin{}, err
	}
	_, net, err := splitFee(amount, state.DepositFeeBps)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "deposit fee")
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return coin.Coin{}, err
	}
	// An empty account starts a new yield period, so that the deposit does
	// not earn anything for the time before it was made.
	if rev >= 2 && acc.Principal.IsZero() {
		if err := settleYield(state, acc, now); err != nil {
			return coin.Coin{}, err
		}
	}
	principal, err := addCoins(state.Ticker, acc.Principal, net)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "principal")
	}
	total, err := addCoins(state.Ticker, state.TotalPrincipal, net)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "total principal")
	}

	// Fee is collected on intake, so the ledger is updated only once the
	// full amount is in the custody.
	if err := v.custody.Debit(db, depositor, amount); err != nil {
		return coin.Coin{}, err
	}

	acc.Principal = principal
	state.TotalPrincipal = total
	if err := v.saveAccount(db, depositor, acc); err != nil {
		return coin.Coin{}, err
	}
	if err := v.saveState(db, state); err != nil {
		return coin.Coin{}, err
	}
	return net, nil
}

// Withdraw releases amount of the depositor principal back to the
// depositor wallet. There is no delay.
func (v *Vault) Withdraw(db weave.KVStore, now time.Time, depositor weave.Address, amount coin.Coin) error {
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	rev, state, err := v.active(db, 1)
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
	if rev >= 2 {
		if err := settleYield(state, acc, now); err != nil {
			return err
		}
	}
	if err := v.release(db, state, depositor, acc, amount); err != nil {
		return err
	}
	return v.custody.Credit(db, depositor, amount)
}

// release lowers the account principal and the total principal by amount
// and persists both. Nothing is paid out.
func (v *Vault) release(db weave.KVStore, state *State, depositor weave.Address, acc *Account, amount coin.Coin) error {
	principal, err := subCoins(state.Ticker, acc.Principal, amount)
	if err != nil {
		return errors.Wrap(err, "principal")
	}
	total, err := subCoins(state.Ticker, state.TotalPrincipal, amount)
	if err != nil {
		return errors.Wrap(err, "total principal")
	}
	acc.Principal = principal
	state.TotalPrincipal = total
	if err := v.saveAccount(db, depositor, acc); err != nil {
		return err
	}
	return v.saveState(db, state)
}

// BalanceOf returns the principal held by given depositor.
func (v *Vault) BalanceOf(db weave.ReadOnlyKVStore, depositor weave.Address) (coin.Coin, error) {
	state, err := v.loadState(db)
	if err != nil {
		return coin.Coin{}, err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return coin.Coin{}, err
	}
	return addCoins(state.Ticker, acc.Principal, coin.Coin{})
}

// TotalPrincipal returns the sum of all account principals.
func (v *Vault) TotalPrincipal(db weave.ReadOnlyKVStore) (coin.Coin, error) {
	state, err := v.loadState(db)
	if err != nil {
		return coin.Coin{}, err
	}
	return addCoins(state.Ticker, state.TotalPrincipal, coin.Coin{})
}

// DepositFee returns the deposit fee in basis points.
func (v *Vault) DepositFee(db weave.ReadOnlyKVStore) (uint32, error) {
	state, err := v.loadState(db)
	if err != nil {
		return 0, err
	}
	return state.DepositFeeBps, nil
}

// SetDepositFee changes the fee charged on every following deposit.
func (v *Vault) SetDepositFee(db weave.KVStore, feeBps uint32) error {
	if err := validateBps(feeBps); err != nil {
		return err
	}
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 1)
	if err != nil {
		return err
	}
	state.DepositFeeBps = feeBps
	return v.saveState(db, state)
}

// IsPaused returns true if deposits are not accepted.
func (v *Vault) IsPaused(db weave.ReadOnlyKVStore) (bool, error) {
	state, err := v.loadState(db)
	if err != nil {
		return false, err
	}
	return state.Paused, nil
}

// PauseDeposits stops accepting deposits. Withdrawals are not affected.
func (v *Vault) PauseDeposits(db weave.KVStore) error {
	return v.setPaused(db, true)
}

// UnpauseDeposits resumes accepting deposits.
func (v *Vault) UnpauseDeposits(db weave.KVStore) error {
	return v.setPaused(db, false)
}

func (v *Vault) setPaused(db weave.KVStore, paused bool) error {
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 1)
	if err != nil {
		return err
	}
	if state.Paused == paused {
		if paused {
			return errors.Wrap(errors.ErrState, "deposits already paused")
		}
		return errors.Wrap(errors.ErrState, "deposits not paused")
	}
	state.Paused = paused
	return v.saveState(db, state)
}
