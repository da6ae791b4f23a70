package vault

import (
	"math/big"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

const (
	// MaxBps is the basis points value of 100%.
	MaxBps = 10000

	// SecondsPerYear is the length of a yield accrual year.
	SecondsPerYear = 365 * 24 * 3600

	// MaxWithdrawalDelay is the longest withdrawal delay in seconds that
	// can be configured.
	MaxWithdrawalDelay = 30 * 24 * 3600
)

var fracUnit = big.NewInt(coin.FracUnit)

// units returns the value of given coin expressed in the smallest unit.
func units(c coin.Coin) *big.Int {
	u := big.NewInt(c.Whole)
	u.Mul(u, fracUnit)
	return u.Add(u, big.NewInt(c.Fractional))
}

// fromUnits returns a coin of given ticker worth u smallest units.
func fromUnits(ticker string, u *big.Int) (coin.Coin, error) {
	if u.Sign() < 0 {
		return coin.Coin{}, errors.Wrap(errors.ErrAmount, "negative value")
	}
	whole, frac := new(big.Int).QuoRem(u, fracUnit, new(big.Int))
	if !whole.IsInt64() || whole.Int64() > coin.MaxInt {
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "value too big")
	}
	return coin.NewCoin(whole.Int64(), frac.Int64(), ticker), nil
}

func zeroCoin(ticker string) coin.Coin {
	return coin.NewCoin(0, 0, ticker)
}

// addCoins returns a + b. Both values are expected to be of given ticker
// or zero.
func addCoins(ticker string, a, b coin.Coin) (coin.Coin, error) {
	u := units(a)
	return fromUnits(ticker, u.Add(u, units(b)))
}

// subCoins returns a - b or an error if b is greater than a.
func subCoins(ticker string, a, b coin.Coin) (coin.Coin, error) {
	u := units(a)
	if u.Sub(u, units(b)).Sign() < 0 {
		return coin.Coin{}, errors.Wrapf(ErrInsufficientBalance, "%v is less than %v", a, b)
	}
	return fromUnits(ticker, u)
}

// covers returns true if a is greater or equal to b.
func covers(a, b coin.Coin) bool {
	return units(a).Cmp(units(b)) >= 0
}

// bpsOf returns floor(amount * bps / 10000).
func bpsOf(amount coin.Coin, bps uint32) (coin.Coin, error) {
	u := units(amount)
	u.Mul(u, big.NewInt(int64(bps)))
	u.Quo(u, big.NewInt(MaxBps))
	return fromUnits(amount.Ticker, u)
}

// splitFee returns the fee charged on given amount and what is left of
// the amount once the fee is subtracted.
func splitFee(amount coin.Coin, feeBps uint32) (fee, net coin.Coin, err error) {
	if feeBps > MaxBps {
		return fee, net, errors.Wrapf(errors.ErrInput, "fee of %d bps", feeBps)
	}
	fee, err = bpsOf(amount, feeBps)
	if err != nil {
		return fee, net, errors.Wrap(err, "fee")
	}
	net, err = subCoins(amount.Ticker, amount, fee)
	return fee, net, err
}

// simpleYield returns the yield earned by principal over elapsed seconds
// at the annual rate of rateBps:
//
//   floor(principal * rateBps * elapsed / (SecondsPerYear * 10000))
//
// Yield is never compounded. A non positive elapsed time earns nothing.
func simpleYield(principal coin.Coin, rateBps uint32, elapsed int64) (coin.Coin, error) {
	if elapsed <= 0 || rateBps == 0 || principal.IsZero() {
		return zeroCoin(principal.Ticker), nil
	}
	u := units(principal)
	u.Mul(u, big.NewInt(int64(rateBps)))
	u.Mul(u, big.NewInt(elapsed))
	u.Quo(u, big.NewInt(SecondsPerYear*MaxBps))
	return fromUnits(principal.Ticker, u)
}
