package entity

type Seat string

const (
	SeatA Seat = "A"
	SeatB Seat = "B"
)

func (s Seat) Opponent() Seat {
	if s == SeatA {
		return SeatB
	}
	return SeatA
}

// Label is the form a seat takes in recorded results.
func (s Seat) Label() string {
	return "Model " + string(s)
}

type Player struct {
	Seat  Seat
	Model string
}

// Turn is one reply played into the transcript. Index 0 is reserved for
// the seed word, so played turns start at 1.
type Turn struct {
	Index int
	Seat  Seat
	Word  string
}

type Verdict struct {
	Winner string
	Reason string
}

// Recorded when a match runs out of turns before anyone loses.
const (
	NoWinner     = "No winner"
	NoConclusion = "No conclusion"
)

type MatchResult struct {
	Experiment int
	Verdict    Verdict
	Turns      []Turn
	Concluded  bool
}

type TournamentResult struct {
	Played  int
	Results []MatchResult
}
