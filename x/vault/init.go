package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to activate the first vault
// revision from the genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis reads the "vault" genesis section. When present, revision 1 is
// activated with given configuration. Later revisions can be activated only
// by their initialization messages.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var conf struct {
		Ticker        string        `json:"ticker"`
		Admin         weave.Address `json:"admin"`
		DepositFeeBps uint32        `json:"deposit_fee_bps"`
	}
	if err := opts.ReadOptions("vault", &conf); err != nil {
		return errors.Wrap(err, "read vault options")
	}
	if conf.Ticker == "" && conf.Admin == nil {
		return nil
	}
	if err := NewVault(nil).Initialize(db, conf.Ticker, conf.Admin, conf.DepositFeeBps); err != nil {
		return errors.Wrap(err, "initialize vault")
	}
	return nil
}
