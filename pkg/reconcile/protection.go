package reconcile

import (
	"github.com/agentstation/dirsync/pkg/identity"
	"github.com/agentstation/dirsync/pkg/secrets"
	"github.com/agentstation/dirsync/pkg/store"
)

// protection restores fields on the freshly mapped snapshot from the
// original before diffing, so that a reconciliation pass cannot discard
// internal state the external directory does not manage.
type protection func(tx store.ReadTx, ctx *Context, updated, original identity.Snapshot)

// protectPerson applies the person rules: keep the stored username when
// the mapped one is blank, suppress credential echoes, and preserve the
// security question and the must-change flag, which the directory never
// owns (the flag only when the mapping does not manage it explicitly).
func (e *Engine) protectPerson(tx store.ReadTx, ctx *Context, updated, original identity.Snapshot) {
	u, ok := updated.(*identity.Person)
	if !ok {
		return
	}
	o, ok := original.(*identity.Person)
	if !ok {
		return
	}

	if u.Username == "" {
		u.Username = o.Username
	}

	// update the credential if and only if it really changed
	if u.Password == "" || e.credentialUnchanged(tx, u.Core().Key, u.Password) {
		u.Password = ""
	}

	u.SecurityQuestion = o.SecurityQuestion

	if !ctx.Mapping.ManagesMustChangePassword() {
		u.MustChangePassword = o.MustChangePassword
	}
}

// credentialUnchanged reports whether plain, hashed with the stored
// algorithm, equals the stored credential of the entity.
func (e *Engine) credentialUnchanged(tx store.ReadTx, key, plain string) bool {
	cred, ok := tx.CredentialByKey(key)
	if !ok {
		return false
	}
	return secrets.Verify(plain, cred.Algorithm, cred.Hash)
}

// protectGroup applies the group rules: keep the stored name when the
// mapped one is blank, always restore ownership, and merge-preserve
// dynamic membership conditions and type extensions, which are additive
// and never replaced by reconciliation.
func (e *Engine) protectGroup(_ store.ReadTx, _ *Context, updated, original identity.Snapshot) {
	u, ok := updated.(*identity.Group)
	if !ok {
		return
	}
	o, ok := original.(*identity.Group)
	if !ok {
		return
	}

	if u.Name == "" {
		u.Name = o.Name
	}
	u.UserOwner = o.UserOwner
	u.GroupOwner = o.GroupOwner
	u.UDynMembershipCond = o.UDynMembershipCond

	if len(o.ADynMembershipConds) > 0 && u.ADynMembershipConds == nil {
		u.ADynMembershipConds = make(map[string]string, len(o.ADynMembershipConds))
	}
	for anyType, cond := range o.ADynMembershipConds {
		u.ADynMembershipConds[anyType] = cond
	}

	for _, ext := range o.TypeExtensions {
		u.TypeExtensions = appendMissing(u.TypeExtensions, ext)
	}
}

// protectObject applies the generic object rule: keep the stored name
// when the mapped one is blank.
func (e *Engine) protectObject(_ store.ReadTx, _ *Context, updated, original identity.Snapshot) {
	u, ok := updated.(*identity.ObjectRecord)
	if !ok {
		return
	}
	o, ok := original.(*identity.ObjectRecord)
	if !ok {
		return
	}

	if u.Name == "" {
		u.Name = o.Name
	}
}
