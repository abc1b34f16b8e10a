package domain

import "time"

// Subscriber holds one recipient's consent state and targeting preferences.
// Mutated only by the opt-in/opt-out commands intercepted during intake.
type Subscriber struct {
	PhoneNumber  string     `db:"phone_number"`
	OptedIn      bool       `db:"opted_in"`
	Regions      []string   `db:"-"`
	Categories   []string   `db:"-"`
	OptedInAt    *time.Time `db:"opted_in_at"`
	OptedOutAt   *time.Time `db:"opted_out_at"`
	LastActivity time.Time  `db:"last_activity"`
}

// DefaultCategories is the full category set assigned on opt-in.
func DefaultCategories() []string {
	return []string{"Education", "Safety", "Culture", "Opportunity", "Events", "Health", "Technology"}
}
