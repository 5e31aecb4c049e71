package dashboard

// Reconcile resolves the pending (optimistic, local) state against a confirmed
// snapshot delivered by the record store subscription. The policy is
// last-confirmed-wins: the confirmed snapshot fully replaces local state,
// there is no merge or diff logic beyond the store's own merge-on-write.
func Reconcile(pending, confirmed *UserState) *UserState {
	if confirmed == nil {
		return pending
	}
	reconciled := confirmed.Clone()
	reconciled.Normalize()
	return reconciled
}
