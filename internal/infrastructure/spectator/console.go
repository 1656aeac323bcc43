package spectator

import (
	"context"
	"fmt"

	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.SpectatorPort = (*Console)(nil)

// Console renders the live transcript to stdout.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) ShowMatchStart(ctx context.Context, experiment int, playerA, playerB entity.Player) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("\n━━━ Experiment %d ━━━\n", experiment)

	dim := color.New(color.Faint)
	dim.Printf("   %s: %s  vs  %s: %s\n", playerA.Seat, playerA.Model, playerB.Seat, playerB.Model)
}

func (c *Console) ShowSeed(ctx context.Context, word string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("  0 seed  %s\n", word)
}

func (c *Console) ShowTurn(ctx context.Context, turn entity.Turn) {
	seatColor := color.New(color.FgGreen)
	if turn.Seat == entity.SeatB {
		seatColor = color.New(color.FgMagenta)
	}
	seatColor.Printf("%3d %s     ", turn.Index, turn.Seat)
	fmt.Println(turn.Word)
}

func (c *Console) ShowVerdict(ctx context.Context, experiment int, verdict entity.Verdict) {
	if verdict.Winner == entity.NoWinner {
		dim := color.New(color.Faint)
		dim.Printf("Experiment %d: game ended without a winner\n", experiment)
		return
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Printf("Experiment %d: Winner: %s", experiment, verdict.Winner)

	dim := color.New(color.Faint)
	dim.Printf(" - %s\n", verdict.Reason)
}

func (c *Console) ShowClosing(ctx context.Context, played int) {
	bold := color.New(color.Bold)
	bold.Printf("\nEND OF ALL GAMES REACHED (%d played)\n", played)
}
