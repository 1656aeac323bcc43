package output

import "wordsnake-arena/internal/domain/entity"

// ResultRecorder persists one row per finished experiment.
type ResultRecorder interface {
	Record(result entity.MatchResult) error
	Close() error
}
