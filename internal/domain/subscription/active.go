package subscription

// ActiveLookup is the result of searching a subscription list for a
// user's ACTIVE row. The backend must keep at most one ACTIVE row per
// user; Matches exposes violations instead of hiding them.
type ActiveLookup struct {
	Subscription Subscription
	Found        bool
	Matches      int
}

// Violation reports more than one ACTIVE row for the user.
func (l ActiveLookup) Violation() bool {
	return l.Matches > 1
}

// FindActive returns the first ACTIVE subscription of userID. Later
// ACTIVE rows are counted but never chosen.
func FindActive(subs []Subscription, userID uint) ActiveLookup {
	var lookup ActiveLookup
	for _, s := range subs {
		if s.UserID != userID || !s.Status.IsActive() {
			continue
		}
		lookup.Matches++
		if !lookup.Found {
			lookup.Subscription = s
			lookup.Found = true
		}
	}
	return lookup
}
