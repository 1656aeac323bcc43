package referee

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wordsnake-arena/internal/domain/entity"
)

// A reply longer than this cannot be a plain animal name, so it loses the
// match for whoever produced it.
const maxWordLen = 30

// Referee adjudicates a single trimmed reply. The checks run in a fixed
// order and the first one that fires decides the match:
// forfeit, then disqualification, then overlong reply.
type Referee struct {
	maxWordLen int
}

func New() *Referee {
	return &Referee{maxWordLen: maxWordLen}
}

// Judge returns the verdict for the reply played by seat, and whether the
// match is over. Keyword matching is case-insensitive; a player announcing
// a disqualification wins because the opponent broke a rule.
func (r *Referee) Judge(seat entity.Seat, reply string) (entity.Verdict, bool) {
	lower := strings.ToLower(reply)

	switch {
	case strings.Contains(lower, "forfeit"):
		return entity.Verdict{
			Winner: seat.Opponent().Label(),
			Reason: fmt.Sprintf("%s forfeited", seat),
		}, true

	case strings.Contains(lower, "disqualified"):
		return entity.Verdict{
			Winner: seat.Label(),
			Reason: fmt.Sprintf("%s disqualified: %s", seat.Opponent(), reply),
		}, true

	case utf8.RuneCountInString(reply) > r.maxWordLen:
		return entity.Verdict{
			Winner: seat.Opponent().Label(),
			Reason: fmt.Sprintf("%s response too long (so not an animal)", seat),
		}, true
	}

	return entity.Verdict{}, false
}
