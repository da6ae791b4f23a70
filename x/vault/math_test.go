package vault

import (
	"math/big"
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

func TestSplitFee(t *testing.T) {
	cases := map[string]struct {
		Amount  coin.Coin
		FeeBps  uint32
		WantFee coin.Coin
		WantNet coin.Coin
		WantErr *errors.Error
	}{
		"five percent": {
			Amount:  coin.NewCoin(100, 0, "IOV"),
			FeeBps:  500,
			WantFee: coin.NewCoin(5, 0, "IOV"),
			WantNet: coin.NewCoin(95, 0, "IOV"),
		},
		"no fee": {
			Amount:  coin.NewCoin(7, 123, "IOV"),
			FeeBps:  0,
			WantFee: coin.NewCoin(0, 0, "IOV"),
			WantNet: coin.NewCoin(7, 123, "IOV"),
		},
		"whole amount is the fee": {
			Amount:  coin.NewCoin(3, 0, "IOV"),
			FeeBps:  MaxBps,
			WantFee: coin.NewCoin(3, 0, "IOV"),
			WantNet: coin.NewCoin(0, 0, "IOV"),
		},
		"fee is rounded down": {
			Amount:  coin.NewCoin(0, 19, "IOV"),
			FeeBps:  500,
			WantFee: coin.NewCoin(0, 0, "IOV"),
			WantNet: coin.NewCoin(0, 19, "IOV"),
		},
		"fractional fee": {
			Amount:  coin.NewCoin(1, 0, "IOV"),
			FeeBps:  1,
			WantFee: coin.NewCoin(0, 100000, "IOV"),
			WantNet: coin.NewCoin(0, 999900000, "IOV"),
		},
		"fee above one hundred percent": {
			Amount:  coin.NewCoin(1, 0, "IOV"),
			FeeBps:  MaxBps + 1,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fee, net, err := splitFee(tc.Amount, tc.FeeBps)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			if !fee.Equals(tc.WantFee) {
				t.Errorf("want %v fee, got %v", tc.WantFee, fee)
			}
			if !net.Equals(tc.WantNet) {
				t.Errorf("want %v net, got %v", tc.WantNet, net)
			}
		})
	}
}

func TestSimpleYield(t *testing.T) {
	cases := map[string]struct {
		Principal coin.Coin
		RateBps   uint32
		Elapsed   int64
		Want      coin.Coin
	}{
		"ten percent over a year": {
			Principal: coin.NewCoin(100, 0, "IOV"),
			RateBps:   1000,
			Elapsed:   SecondsPerYear,
			Want:      coin.NewCoin(10, 0, "IOV"),
		},
		"ten percent over half a year": {
			Principal: coin.NewCoin(100, 0, "IOV"),
			RateBps:   1000,
			Elapsed:   SecondsPerYear / 2,
			Want:      coin.NewCoin(5, 0, "IOV"),
		},
		"yield is not compounded over two years": {
			Principal: coin.NewCoin(100, 0, "IOV"),
			RateBps:   1000,
			Elapsed:   2 * SecondsPerYear,
			Want:      coin.NewCoin(20, 0, "IOV"),
		},
		"single second is rounded down": {
			Principal: coin.NewCoin(0, 1000, "IOV"),
			RateBps:   1000,
			Elapsed:   1,
			Want:      coin.NewCoin(0, 0, "IOV"),
		},
		"no time elapsed": {
			Principal: coin.NewCoin(100, 0, "IOV"),
			RateBps:   1000,
			Elapsed:   0,
			Want:      coin.NewCoin(0, 0, "IOV"),
		},
		"clock moved backward": {
			Principal: coin.NewCoin(100, 0, "IOV"),
			RateBps:   1000,
			Elapsed:   -600,
			Want:      coin.NewCoin(0, 0, "IOV"),
		},
		"zero rate": {
			Principal: coin.NewCoin(100, 0, "IOV"),
			RateBps:   0,
			Elapsed:   SecondsPerYear,
			Want:      coin.NewCoin(0, 0, "IOV"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := simpleYield(tc.Principal, tc.RateBps, tc.Elapsed)
			if err != nil {
				t.Fatalf("cannot compute yield: %s", err)
			}
			if !got.Equals(tc.Want) {
				t.Fatalf("want %v, got %v", tc.Want, got)
			}
		})
	}
}

func TestCoinArithmetic(t *testing.T) {
	a := coin.NewCoin(1, 600000000, "IOV")
	b := coin.NewCoin(0, 700000000, "IOV")

	sum, err := addCoins("IOV", a, b)
	if err != nil {
		t.Fatalf("cannot add: %s", err)
	}
	if want := coin.NewCoin(2, 300000000, "IOV"); !sum.Equals(want) {
		t.Fatalf("want %v, got %v", want, sum)
	}

	diff, err := subCoins("IOV", a, b)
	if err != nil {
		t.Fatalf("cannot subtract: %s", err)
	}
	if want := coin.NewCoin(0, 900000000, "IOV"); !diff.Equals(want) {
		t.Fatalf("want %v, got %v", want, diff)
	}

	if _, err := subCoins("IOV", b, a); !ErrInsufficientBalance.Is(err) {
		t.Fatalf("want insufficient amount error, got %+v", err)
	}

	// Zero value coin without a ticker is a valid operand.
	sum, err = addCoins("IOV", coin.Coin{}, b)
	if err != nil {
		t.Fatalf("cannot add to zero: %s", err)
	}
	if !sum.Equals(b) {
		t.Fatalf("want %v, got %v", b, sum)
	}

	if !covers(a, b) || covers(b, a) || !covers(a, a) {
		t.Fatal("unexpected covers result")
	}
}

func TestFromUnits(t *testing.T) {
	if _, err := fromUnits("IOV", big.NewInt(-1)); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %+v", err)
	}

	huge := new(big.Int).Mul(big.NewInt(coin.MaxInt+1), fracUnit)
	if _, err := fromUnits("IOV", huge); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow error, got %+v", err)
	}

	c, err := fromUnits("IOV", big.NewInt(3*coin.FracUnit+7))
	if err != nil {
		t.Fatalf("cannot convert: %s", err)
	}
	if want := coin.NewCoin(3, 7, "IOV"); !c.Equals(want) {
		t.Fatalf("want %v, got %v", want, c)
	}
}
