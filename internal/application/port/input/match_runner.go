package input

import (
	"context"

	"wordsnake-arena/internal/domain/entity"
)

type MatchRunner interface {
	Run(ctx context.Context, experiment int) (*entity.MatchResult, error)
}
