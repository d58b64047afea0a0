package dungeon

import (
	"math/rand"

	"github.com/graywall/dungeonplan/internal/grid"
	"github.com/graywall/dungeonplan/internal/logger"
)

// stopChanceDivisor scales how quickly the early-stop probability grows
// as rooms are accepted
const stopChanceDivisor = 1.1

// Placer lays out non-overlapping rectangular rooms on a floor grid
type Placer struct {
	cfg Config
	rng *rand.Rand
}

// NewPlacer creates a Placer drawing from the given random source. The
// config is normalized before use.
func NewPlacer(cfg Config, rng *rand.Rand) *Placer {
	return &Placer{cfg: cfg.Normalize(), rng: rng}
}

// PlaceRooms allocates the floor grid, generates rooms, and stamps each
// accepted room into it. Placement ends when the target count is
// reached, when too many candidates in a row collide, or when the
// early-stop draw fires. The first candidate has nothing to collide
// with, so a normalized config always yields at least one room.
func (p *Placer) PlaceRooms() (*grid.Grid, []Room) {
	g := grid.NewGrid(p.cfg.GridSize)

	var rooms []Room
	rejections := 0
	stopChance := 0.0
	stopStep := 1.0 / (float64(p.cfg.MaxRooms) * stopChanceDivisor)

	for len(rooms) < p.cfg.MaxRooms {
		cand := p.nextCandidate(g.Size())

		if overlapsAny(cand, rooms) {
			rejections++
			if rejections >= p.cfg.RetryLimit {
				logger.Warning("Room placement retry limit reached",
					"placed", len(rooms),
					"target", p.cfg.MaxRooms,
					"rejections", rejections)
				break
			}
			continue
		}

		rooms = append(rooms, cand)
		rejections = 0

		if len(rooms) < p.cfg.MaxRooms {
			stopChance += stopStep
			if p.rng.Float64() < stopChance {
				logger.Info("Room placement stopped early",
					"placed", len(rooms),
					"target", p.cfg.MaxRooms)
				break
			}
		}
	}

	for _, room := range rooms {
		stampRoom(g, room)
	}
	return g, rooms
}

// nextCandidate draws a room sized and positioned uniformly inside the
// grid. The draw order is fixed so a seed always reproduces the same
// floor: length, width, column, row.
func (p *Placer) nextCandidate(size int) Room {
	span := p.cfg.MaxRoomSize - p.cfg.MinRoomSize + 1
	length := p.rng.Intn(span) + p.cfg.MinRoomSize // column extent
	width := p.rng.Intn(span) + p.cfg.MinRoomSize  // row extent
	col := p.rng.Intn(size - length + 1)
	row := p.rng.Intn(size - width + 1)
	return Room{Bounds: RectAt(row, col, width, length)}
}

func overlapsAny(cand Room, rooms []Room) bool {
	for _, r := range rooms {
		if !cand.Separated(r) {
			return true
		}
	}
	return false
}

// stampRoom writes the room symbol into every cell of the room's bounds
func stampRoom(g *grid.Grid, room Room) {
	for row := room.Bounds.MinRow; row < room.Bounds.MaxRow; row++ {
		for col := room.Bounds.MinCol; col < room.Bounds.MaxCol; col++ {
			g.Set(row, col, grid.SymbolRoom)
		}
	}
}
