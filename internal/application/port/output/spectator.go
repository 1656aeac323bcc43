package output

import (
	"context"

	"wordsnake-arena/internal/domain/entity"
)

// SpectatorPort renders match progress for whoever is watching the run.
type SpectatorPort interface {
	ShowMatchStart(ctx context.Context, experiment int, playerA, playerB entity.Player)
	ShowSeed(ctx context.Context, word string)
	ShowTurn(ctx context.Context, turn entity.Turn)
	ShowVerdict(ctx context.Context, experiment int, verdict entity.Verdict)
	ShowClosing(ctx context.Context, played int)
}
