package input

import (
	"context"

	"wordsnake-arena/internal/domain/entity"
)

type TournamentRunner interface {
	Run(ctx context.Context) (*entity.TournamentResult, error)
}
