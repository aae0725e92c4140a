package domain

import "time"

// Quote is a persisted pricing run: the context that was quoted, the
// breakdown it produced, and when. The engine itself never creates these;
// the service layer assigns the ID and stores the pair.
type Quote struct {
	ID        string
	CreatedAt time.Time
	Context   CostingContext
	Result    CostBreakdownResult
}
