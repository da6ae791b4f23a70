package vault

import (
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// accrued returns the yield owed to the account at given time: the settled
// pending yield plus what the principal earned since the last claim. An
// account that never claimed earns since the yield regime start.
func accrued(s *State, a *Account, now time.Time) (coin.Coin, error) {
	since := a.LastYieldClaim
	if since == 0 {
		since = s.YieldRegimeStart
	}
	elapsed := now.Unix() - int64(since)
	earned, err := simpleYield(a.Principal, s.YieldRateBps, elapsed)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "yield")
	}
	return addCoins(s.Ticker, a.PendingYield, earned)
}

// settleYield moves the yield accrued so far into the pending yield and
// starts a new accrual period at given time.
func settleYield(s *State, a *Account, now time.Time) error {
	y, err := accrued(s, a, now)
	if err != nil {
		return err
	}
	a.PendingYield = y
	a.LastYieldClaim = weave.AsUnixTime(now)
	return nil
}

// UserYield returns the yield the depositor could claim at given time.
func (v *Vault) UserYield(db weave.ReadOnlyKVStore, now time.Time, depositor weave.Address) (coin.Coin, error) {
	_, state, err := v.active(db, 2)
	if err != nil {
		return coin.Coin{}, err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return coin.Coin{}, err
	}
	return accrued(state, acc, now)
}

// ClaimYield pays out the accrued yield to the depositor wallet. The
// principal is left unchanged.
func (v *Vault) ClaimYield(db weave.KVStore, now time.Time, depositor weave.Address) (coin.Coin, error) {
	if err := v.guard.enter(); err != nil {
		return coin.Coin{}, err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 2)
	if err != nil {
		return coin.Coin{}, err
	}
	acc, err := v.loadAccount(db, depositor)
	if err != nil {
		return coin.Coin{}, err
	}
	y, err := accrued(state, acc, now)
	if err != nil {
		return coin.Coin{}, err
	}
	if !y.IsPositive() {
		return coin.Coin{}, errors.Wrap(ErrNoYield, "nothing accrued")
	}
	acc.PendingYield = zeroCoin(state.Ticker)
	acc.LastYieldClaim = weave.AsUnixTime(now)
	if err := v.saveAccount(db, depositor, acc); err != nil {
		return coin.Coin{}, err
	}
	if err := v.custody.Credit(db, depositor, y); err != nil {
		return coin.Coin{}, err
	}
	return y, nil
}

// YieldRate returns the annual yield rate in basis points.
func (v *Vault) YieldRate(db weave.ReadOnlyKVStore) (uint32, error) {
	_, state, err := v.active(db, 2)
	if err != nil {
		return 0, err
	}
	return state.YieldRateBps, nil
}

// SetYieldRate changes the annual yield rate. The new rate applies to the
// whole period since each account last settled its yield.
func (v *Vault) SetYieldRate(db weave.KVStore, rateBps uint32) error {
	if err := validateBps(rateBps); err != nil {
		return err
	}
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	_, state, err := v.active(db, 2)
	if err != nil {
		return err
	}
	state.YieldRateBps = rateBps
	return v.saveState(db, state)
}
