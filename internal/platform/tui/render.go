package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// kindStyles maps a board cell's tetromino kind to its display color,
// matching the guideline piece-color convention (I cyan, O yellow, T purple,
// S green, Z red, J blue, L orange).
var kindStyles = map[tetris.Kind]lipgloss.Style{
	tetris.KindNone: lipgloss.NewStyle(),
	tetris.KindI:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	tetris.KindO:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	tetris.KindT:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	tetris.KindS:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	tetris.KindZ:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	tetris.KindJ:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	tetris.KindL:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var ghostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

const emptyCellGlyph = "· "

// RenderBoard draws the playfield, grouping consecutive same-kind cells
// into one styled run to minimize ANSI escape sequences, the way the
// teacher's RenderScreen groups consecutive same-color screen cells.
func RenderBoard(obs tetris.Observation) string {
	board := tetris.NewBoardFromCells(obs.Board.Cells)
	ghostY := ghostDropY(obs)

	var sb strings.Builder
	sb.Grow(obs.Board.W*obs.Board.H*2 + obs.Board.H)

	for y := 0; y < obs.Board.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < obs.Board.W {
			kind := tetris.KindFromCell(board.Get(x, y))
			isGhost := kind == tetris.KindNone && onGhostOutline(obs, ghostY, x, y)

			var run strings.Builder
			runIsGhost := isGhost
			runKind := kind
			for x < obs.Board.W {
				k := tetris.KindFromCell(board.Get(x, y))
				g := k == tetris.KindNone && onGhostOutline(obs, ghostY, x, y)
				if k != runKind || g != runIsGhost {
					break
				}
				if k == tetris.KindNone && !g {
					run.WriteString(emptyCellGlyph)
				} else {
					run.WriteString("[]")
				}
				x++
			}

			switch {
			case runKind != tetris.KindNone:
				sb.WriteString(kindStyles[runKind].Render(run.String()))
			case runIsGhost:
				sb.WriteString(ghostStyle.Render(run.String()))
			default:
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// ghostDropY finds how far the active piece would fall if hard-dropped now,
// for the ghost-piece outline. It re-derives the landing row from the
// current piece's legal moves rather than simulating drop physics here.
func ghostDropY(obs tetris.Observation) int {
	for _, m := range obs.LegalMoves {
		if !m.UseHold && m.X == obs.Current.X && m.Rot == obs.Current.Rot {
			return m.HardDropY
		}
	}
	return obs.Current.Y
}

func onGhostOutline(obs tetris.Observation, ghostY, x, y int) bool {
	if ghostY <= obs.Current.Y {
		return false
	}
	piece := tetris.NewPiece(kindFromTypeString(obs.Current.Type), obs.Current.X, ghostY, obs.Current.Rot)
	for _, c := range piece.Cells() {
		if c[0] == x && c[1] == y {
			return true
		}
	}
	return false
}

func kindFromTypeString(s string) tetris.Kind {
	for _, k := range tetris.Kinds {
		if k.String() == s {
			return k
		}
	}
	return tetris.KindNone
}

// RenderNextQueue renders the upcoming piece letters as a vertical list.
func RenderNextQueue(next []string) string {
	if len(next) == 0 {
		return "(empty)"
	}
	return strings.Join(next, "\n")
}

// RenderHold renders the hold slot's contents, or a placeholder when empty.
func RenderHold(hold tetris.HoldView) string {
	if hold.Type == nil {
		return "(empty)"
	}
	return *hold.Type
}
