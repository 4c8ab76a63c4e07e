// Package model contains domain models passed between layers.
package model

// TimeStatusEnded is the upstream marker for a completed game.
const TimeStatusEnded = "3"

// Side is one participant of a game as delivered by the source.
// Pointer fields upstream may be absent, so callers must nil-check.
type Side struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Game is the unit record flowing from the source into the statistics
// engine. Fields mirror the upstream ended-events wire shape. A Game is
// never mutated once admitted to a working set.
type Game struct {
	ID         string `json:"id"`
	Home       *Side  `json:"home"`
	Away       *Side  `json:"away"`
	TimeStatus string `json:"time_status"`
	Score      string `json:"ss"` // "<home>-<away>", may be empty or malformed
}

// Ended reports whether the game carries the completed-status marker.
func (g Game) Ended() bool {
	return g.TimeStatus == TimeStatusEnded
}

// Involves reports whether the game was played between exactly the two
// given competitors, in either home/away order. Games missing a side
// never qualify.
func (g Game) Involves(p1, p2 string) bool {
	if g.Home == nil || g.Away == nil {
		return false
	}
	return (g.Home.ID == p1 && g.Away.ID == p2) || (g.Home.ID == p2 && g.Away.ID == p1)
}
