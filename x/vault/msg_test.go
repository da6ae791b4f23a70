package vault

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestInitializeMsgValidate(t *testing.T) {
	msg := &InitializeMsg{
		Ticker:        "toolong",
		DepositFeeBps: MaxBps + 1,
	}
	err := msg.Validate()

	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "Ticker", errors.ErrCurrency)
	assert.FieldError(t, err, "Admin", errors.ErrEmpty)
	assert.FieldError(t, err, "DepositFeeBps", errors.ErrInput)

	msg = &InitializeMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		Ticker:        "IOV",
		Admin:         weavetest.NewCondition().Address(),
		DepositFeeBps: MaxBps,
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("valid message: %s", err)
	}
}

func TestRevisionMsgValidate(t *testing.T) {
	v2 := &InitializeV2Msg{YieldRateBps: MaxBps + 1}
	err := v2.Validate()
	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "YieldRateBps", errors.ErrInput)

	v3 := &InitializeV3Msg{
		Metadata:               &weave.Metadata{Schema: 1},
		WithdrawalDelaySeconds: MaxWithdrawalDelay + 1,
	}
	err = v3.Validate()
	assert.FieldError(t, err, "Metadata", nil)
	assert.FieldError(t, err, "WithdrawalDelaySeconds", errors.ErrInput)

	v3.WithdrawalDelaySeconds = MaxWithdrawalDelay
	if err := v3.Validate(); err != nil {
		t.Fatalf("valid message: %s", err)
	}
}

func TestRoleMsgValidate(t *testing.T) {
	grant := &GrantRoleMsg{Metadata: &weave.Metadata{Schema: 1}}
	err := grant.Validate()
	assert.FieldError(t, err, "Metadata", nil)
	assert.FieldError(t, err, "Address", errors.ErrEmpty)
	assert.FieldError(t, err, "Role", errors.ErrInput)

	revoke := &RevokeRoleMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  weavetest.NewCondition().Address(),
		Role:     RolePauser,
	}
	if err := revoke.Validate(); err != nil {
		t.Fatalf("valid message: %s", err)
	}
}

func TestMoneyMsgValidate(t *testing.T) {
	depositor := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Msg        weave.Msg
		WantFields map[string]*errors.Error
	}{
		"valid deposit": {
			Msg: &DepositMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Depositor: depositor,
				Amount:    coin.NewCoin(1, 0, "IOV"),
			},
			WantFields: map[string]*errors.Error{
				"Metadata":  nil,
				"Depositor": nil,
				"Amount":    nil,
			},
		},
		"empty deposit": {
			Msg: &DepositMsg{},
			WantFields: map[string]*errors.Error{
				"Metadata":  errors.ErrMetadata,
				"Depositor": errors.ErrEmpty,
				"Amount":    errors.ErrCurrency,
			},
		},
		"zero withdraw": {
			Msg: &WithdrawMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Depositor: depositor,
				Amount:    coin.NewCoin(0, 0, "IOV"),
			},
			WantFields: map[string]*errors.Error{
				"Metadata":  nil,
				"Depositor": nil,
				"Amount":    errors.ErrAmount,
			},
		},
		"negative withdrawal request": {
			Msg: &RequestWithdrawalMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Depositor: depositor,
				Amount:    coin.NewCoin(-3, 0, "IOV"),
			},
			WantFields: map[string]*errors.Error{
				"Depositor": nil,
				"Amount":    errors.ErrAmount,
			},
		},
		"claim without depositor": {
			Msg: &ClaimYieldMsg{Metadata: &weave.Metadata{Schema: 1}},
			WantFields: map[string]*errors.Error{
				"Metadata":  nil,
				"Depositor": errors.ErrEmpty,
			},
		},
		"valid execute": {
			Msg: &ExecuteWithdrawalMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Depositor: depositor,
			},
			WantFields: map[string]*errors.Error{
				"Metadata":  nil,
				"Depositor": nil,
			},
		},
		"emergency without metadata": {
			Msg: &EmergencyWithdrawMsg{Depositor: depositor},
			WantFields: map[string]*errors.Error{
				"Metadata":  errors.ErrMetadata,
				"Depositor": nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Msg.Validate()
			for field, want := range tc.WantFields {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestSettingsMsgValidate(t *testing.T) {
	fee := &SetDepositFeeMsg{Metadata: &weave.Metadata{Schema: 1}, DepositFeeBps: MaxBps + 1}
	assert.FieldError(t, fee.Validate(), "DepositFeeBps", errors.ErrInput)

	rate := &SetYieldRateMsg{Metadata: &weave.Metadata{Schema: 1}, YieldRateBps: 1}
	if err := rate.Validate(); err != nil {
		t.Fatalf("valid message: %s", err)
	}

	delay := &SetWithdrawalDelayMsg{WithdrawalDelaySeconds: MaxWithdrawalDelay + 1}
	err := delay.Validate()
	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "WithdrawalDelaySeconds", errors.ErrInput)

	pause := &PauseDepositsMsg{}
	assert.FieldError(t, pause.Validate(), "Metadata", errors.ErrMetadata)
	unpause := &UnpauseDepositsMsg{Metadata: &weave.Metadata{Schema: 1}}
	if err := unpause.Validate(); err != nil {
		t.Fatalf("valid message: %s", err)
	}
}

func TestMsgPaths(t *testing.T) {
	paths := make(map[string]weave.Msg)
	for _, msg := range []weave.Msg{
		&InitializeMsg{},
		&InitializeV2Msg{},
		&InitializeV3Msg{},
		&GrantRoleMsg{},
		&RevokeRoleMsg{},
		&SetDepositFeeMsg{},
		&PauseDepositsMsg{},
		&UnpauseDepositsMsg{},
		&DepositMsg{},
		&WithdrawMsg{},
		&SetYieldRateMsg{},
		&ClaimYieldMsg{},
		&SetWithdrawalDelayMsg{},
		&RequestWithdrawalMsg{},
		&ExecuteWithdrawalMsg{},
		&EmergencyWithdrawMsg{},
	} {
		if prev, ok := paths[msg.Path()]; ok {
			t.Fatalf("%T and %T share %q path", prev, msg, msg.Path())
		}
		paths[msg.Path()] = msg
	}
}
