package domain

import "github.com/shopspring/decimal"

// Goal is a savings target. Current starts at zero and no operation in this
// core increments it. The ID is the Unix-millisecond creation timestamp.
type Goal struct {
	ID      int64           `json:"id"`
	UserID  int64           `json:"user_id"`
	Name    string          `json:"name"`
	Target  decimal.Decimal `json:"target"`
	Current decimal.Decimal `json:"current"`
}

// ProgressPercent returns Current/Target as a percentage. The division is
// deliberately unguarded: a zero target yields +Inf (or NaN when Current is
// also zero). Zero-target goals cannot be created through AddGoal, so a
// non-finite result is only reachable for records written to the store by
// other means.
func (g Goal) ProgressPercent() float64 {
	target, _ := g.Target.Float64()
	current, _ := g.Current.Float64()
	return current / target * 100
}
