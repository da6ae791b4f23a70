package vault

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestDepositSubtractsFee(t *testing.T) {
	v, custody, db, _ := newTestVault(t, 1, 500)
	alice := weavetest.NewCondition().Address()

	net, err := v.Deposit(db, now, alice, coin.NewCoin(100, 0, "IOV"))
	if err != nil {
		t.Fatalf("cannot deposit: %s", err)
	}
	if want := coin.NewCoin(95, 0, "IOV"); !net.Equals(want) {
		t.Fatalf("want %v credited, got %v", want, net)
	}
	assertBalance(t, v, db, alice, coin.NewCoin(95, 0, "IOV"))

	total, err := v.TotalPrincipal(db)
	if err != nil {
		t.Fatalf("total principal: %s", err)
	}
	if want := coin.NewCoin(95, 0, "IOV"); !total.Equals(want) {
		t.Fatalf("want %v total, got %v", want, total)
	}

	// The fee stays in the custody.
	if want := coin.NewCoin(100, 0, "IOV"); !custody.held.Equals(want) {
		t.Fatalf("want %v in custody, got %v", want, custody.held)
	}
}

func TestDepositFailures(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Prepare func(t testing.TB, v *Vault, c *custodyMock, db weave.KVStore)
		Amount  coin.Coin
		WantErr *errors.Error
	}{
		"zero amount": {
			Amount:  coin.NewCoin(0, 0, "IOV"),
			WantErr: errors.ErrAmount,
		},
		"negative amount": {
			Amount:  coin.NewCoin(-1, 0, "IOV"),
			WantErr: errors.ErrAmount,
		},
		"foreign asset": {
			Amount:  coin.NewCoin(5, 0, "ETH"),
			WantErr: errors.ErrCurrency,
		},
		"missing ticker": {
			Amount:  coin.NewCoin(5, 0, ""),
			WantErr: errors.ErrCurrency,
		},
		"deposits paused": {
			Prepare: func(t testing.TB, v *Vault, c *custodyMock, db weave.KVStore) {
				if err := v.PauseDeposits(db); err != nil {
					t.Fatalf("cannot pause: %s", err)
				}
			},
			Amount:  coin.NewCoin(5, 0, "IOV"),
			WantErr: ErrPaused,
		},
		"transfer failed": {
			Prepare: func(t testing.TB, v *Vault, c *custodyMock, db weave.KVStore) {
				c.err = errors.ErrAmount
			},
			Amount:  coin.NewCoin(5, 0, "IOV"),
			WantErr: ErrTransferFailed,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			v, custody, db, _ := newTestVault(t, 1, 100)
			if tc.Prepare != nil {
				tc.Prepare(t, v, custody, db)
			}
			if _, err := v.Deposit(db, now, alice, tc.Amount); !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}

			// Nothing was credited.
			assertBalance(t, v, db, alice, coin.NewCoin(0, 0, "IOV"))
			total, err := v.TotalPrincipal(db)
			if err != nil {
				t.Fatalf("total principal: %s", err)
			}
			if !total.IsZero() {
				t.Fatalf("want zero total, got %v", total)
			}
		})
	}
}

func TestDepositRequiresInitialization(t *testing.T) {
	v := NewVault(&custodyMock{})
	db := store.MemStore()
	alice := weavetest.NewCondition().Address()

	if _, err := v.Deposit(db, now, alice, coin.NewCoin(1, 0, "IOV")); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if err := v.Withdraw(db, now, alice, coin.NewCoin(1, 0, "IOV")); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if _, err := v.BalanceOf(db, alice); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
}

func TestWithdraw(t *testing.T) {
	v, custody, db, _ := newTestVault(t, 1, 0)
	alice := weavetest.NewCondition().Address()

	deposit(t, v, db, now, alice, coin.NewCoin(100, 0, "IOV"))

	if err := v.Withdraw(db, now, alice, coin.NewCoin(40, 0, "IOV")); err != nil {
		t.Fatalf("cannot withdraw: %s", err)
	}
	assertBalance(t, v, db, alice, coin.NewCoin(60, 0, "IOV"))
	if want := coin.NewCoin(40, 0, "IOV"); !custody.paidTo(alice).Equals(want) {
		t.Fatalf("want %v paid, got %v", want, custody.paidTo(alice))
	}

	if err := v.Withdraw(db, now, alice, coin.NewCoin(60, 1, "IOV")); !ErrInsufficientBalance.Is(err) {
		t.Fatalf("want insufficient amount error, got %+v", err)
	}
	if err := v.Withdraw(db, now, alice, coin.NewCoin(0, 0, "IOV")); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %+v", err)
	}

	// Whole principal can be taken out.
	if err := v.Withdraw(db, now, alice, coin.NewCoin(60, 0, "IOV")); err != nil {
		t.Fatalf("cannot withdraw: %s", err)
	}
	assertBalance(t, v, db, alice, coin.NewCoin(0, 0, "IOV"))
}

func TestWithdrawTransferFailure(t *testing.T) {
	v, custody, db, _ := newTestVault(t, 1, 0)
	alice := weavetest.NewCondition().Address()

	deposit(t, v, db, now, alice, coin.NewCoin(10, 0, "IOV"))

	custody.err = errors.ErrState
	cache := db.(weave.CacheableKVStore).CacheWrap()
	if err := v.Withdraw(cache, now, alice, coin.NewCoin(10, 0, "IOV")); !ErrTransferFailed.Is(err) {
		t.Fatalf("want transfer failed error, got %+v", err)
	}
	cache.Discard()

	// A failed transaction is never committed.
	assertBalance(t, v, db, alice, coin.NewCoin(10, 0, "IOV"))
}

func TestTotalPrincipalIsSumOfBalances(t *testing.T) {
	v, _, db, _ := newTestVault(t, 1, 250)

	depositors := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}
	for i, d := range depositors {
		deposit(t, v, db, now, d, coin.NewCoin(int64(10*(i+1)), 333, "IOV"))
	}
	if err := v.Withdraw(db, now, depositors[1], coin.NewCoin(3, 0, "IOV")); err != nil {
		t.Fatalf("cannot withdraw: %s", err)
	}
	deposit(t, v, db, now, depositors[0], coin.NewCoin(0, 17, "IOV"))

	sum := coin.NewCoin(0, 0, "IOV")
	for _, d := range depositors {
		b, err := v.BalanceOf(db, d)
		if err != nil {
			t.Fatalf("balance: %s", err)
		}
		sum, err = addCoins("IOV", sum, b)
		if err != nil {
			t.Fatalf("add: %s", err)
		}
	}
	total, err := v.TotalPrincipal(db)
	if err != nil {
		t.Fatalf("total principal: %s", err)
	}
	if !total.Equals(sum) {
		t.Fatalf("total %v does not match sum of balances %v", total, sum)
	}
}

func TestPauseGate(t *testing.T) {
	v, _, db, _ := newTestVault(t, 1, 0)
	alice := weavetest.NewCondition().Address()

	deposit(t, v, db, now, alice, coin.NewCoin(10, 0, "IOV"))

	if err := v.UnpauseDeposits(db); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
	if err := v.PauseDeposits(db); err != nil {
		t.Fatalf("cannot pause: %s", err)
	}
	if err := v.PauseDeposits(db); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
	if paused, err := v.IsPaused(db); err != nil || !paused {
		t.Fatalf("want paused, got %v, %v", paused, err)
	}

	// Withdrawals are not affected by the pause gate.
	if err := v.Withdraw(db, now, alice, coin.NewCoin(5, 0, "IOV")); err != nil {
		t.Fatalf("cannot withdraw while paused: %s", err)
	}

	if err := v.UnpauseDeposits(db); err != nil {
		t.Fatalf("cannot unpause: %s", err)
	}
	deposit(t, v, db, now, alice, coin.NewCoin(1, 0, "IOV"))
	assertBalance(t, v, db, alice, coin.NewCoin(6, 0, "IOV"))
}

func TestSetDepositFee(t *testing.T) {
	v, _, db, _ := newTestVault(t, 1, 0)
	alice := weavetest.NewCondition().Address()

	if err := v.SetDepositFee(db, MaxBps+1); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
	if err := v.SetDepositFee(db, 1000); err != nil {
		t.Fatalf("cannot set fee: %s", err)
	}
	if fee, err := v.DepositFee(db); err != nil || fee != 1000 {
		t.Fatalf("want 1000 bps fee, got %d, %v", fee, err)
	}

	deposit(t, v, db, now, alice, coin.NewCoin(50, 0, "IOV"))
	assertBalance(t, v, db, alice, coin.NewCoin(45, 0, "IOV"))
}
