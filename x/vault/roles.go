package vault

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x"
)

// Validate returns an error if this is not a grantable role.
func (r Role) Validate() error {
	if r == RoleInvalid {
		return errors.Wrap(errors.ErrInput, "role not set")
	}
	if _, ok := Role_name[int32(r)]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown role %d", r)
	}
	return nil
}

// Has returns true if given role was granted.
func (r *RoleSet) Has(role Role) bool {
	for _, have := range r.Roles {
		if have == role {
			return true
		}
	}
	return false
}

// add grants given role and returns false if it was already granted.
func (r *RoleSet) add(role Role) bool {
	if r.Has(role) {
		return false
	}
	r.Roles = append(r.Roles, role)
	return true
}

// remove revokes given role and returns false if it was not granted.
func (r *RoleSet) remove(role Role) bool {
	for i, have := range r.Roles {
		if have == role {
			r.Roles = append(r.Roles[:i], r.Roles[i+1:]...)
			return true
		}
	}
	return false
}

func (v *Vault) loadRoles(db weave.ReadOnlyKVStore, addr weave.Address) (*RoleSet, error) {
	// No role exists before the vault is initialized.
	if rev, err := v.Revision(db); err != nil {
		return nil, err
	} else if rev == 0 {
		return &RoleSet{Metadata: &weave.Metadata{Schema: 1}}, nil
	}
	var rs RoleSet
	switch err := v.roles.One(db, addr, &rs); {
	case err == nil:
		return &rs, nil
	case errors.ErrNotFound.Is(err):
		return &RoleSet{Metadata: &weave.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "load roles")
	}
}

// HasRole returns true if given address was granted the role.
func (v *Vault) HasRole(db weave.ReadOnlyKVStore, addr weave.Address, role Role) (bool, error) {
	rs, err := v.loadRoles(db, addr)
	if err != nil {
		return false, err
	}
	return rs.Has(role), nil
}

// Authorize returns an error unless any of the conditions the transaction
// was signed with holds the role.
func (v *Vault) Authorize(ctx weave.Context, auth x.Authenticator, db weave.ReadOnlyKVStore, role Role) error {
	for _, cond := range auth.GetConditions(ctx) {
		ok, err := v.HasRole(db, cond.Address(), role)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrUnauthorized, "%s role required", role)
}

// GrantRole adds the role to the set owned by given address.
func (v *Vault) GrantRole(db weave.KVStore, addr weave.Address, role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()
	return v.grant(db, addr, role)
}

func (v *Vault) grant(db weave.KVStore, addr weave.Address, role Role) error {
	rs, err := v.loadRoles(db, addr)
	if err != nil {
		return err
	}
	if !rs.add(role) {
		return errors.Wrapf(errors.ErrDuplicate, "%s already granted to %s", role, addr)
	}
	if _, err := v.roles.Put(db, addr, rs); err != nil {
		return errors.Wrap(err, "save roles")
	}
	return nil
}

// RevokeRole removes the role from the set owned by given address.
func (v *Vault) RevokeRole(db weave.KVStore, addr weave.Address, role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := v.guard.enter(); err != nil {
		return err
	}
	defer v.guard.exit()

	rs, err := v.loadRoles(db, addr)
	if err != nil {
		return err
	}
	if !rs.remove(role) {
		return errors.Wrapf(errors.ErrNotFound, "%s not granted to %s", role, addr)
	}
	if _, err := v.roles.Put(db, addr, rs); err != nil {
		return errors.Wrap(err, "save roles")
	}
	return nil
}
