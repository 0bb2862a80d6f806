package pocketbook

import "time"

// GracePeriod is how long a retired transaction remains inspectable before
// the sweeper purges it for good.
const GracePeriod = 48 * time.Hour

// Sweep permanently removes every transaction whose grace period has
// expired: retired, with now at or past its deleteAfter. It returns the
// reduced snapshot and the number of purged records. Callers run it once per
// load, before any other computation, and persist the result when removed is
// non-zero.
func Sweep(l *Ledger, now time.Time) (swept *Ledger, removed int) {
	kept := make([]Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if t.PendingDelete && t.DeleteAfter != nil && !t.DeleteAfter.After(now) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return l, 0
	}
	return &Ledger{transactions: kept, goals: l.goals}, removed
}
