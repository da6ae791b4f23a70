/*
Package vault implements a custodial value ledger.

Depositors move coins into the vault custody and are credited a principal
net of the deposit fee. The principal earns a simple, non compounding yield
and can be taken out either immediately, after a configurable withdrawal
delay, or at once through the emergency path that bypasses the delay.

The feature set is released in revisions. The active revision is the schema
version of the "vault" package kept by the migration extension:

	1: deposit, withdraw, deposit fee, pause gate, roles
	2: yield accrual and claims
	3: delayed withdrawal and emergency withdrawal

Each revision only appends fields to the persisted records and is activated
exactly once, by a dedicated initialization message.
*/
package vault

//go:generate protoc -I=. -I=$WEAVE_ROOT -I=$GOGO_PROTO_ROOT --gogofaster_out=Mcodec.proto=github.com/iov-one/weave,Mcoin/codec.proto=github.com/iov-one/weave/coin:. codec.proto
