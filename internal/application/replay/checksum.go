package replay

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/zeebo/xxh3"
)

// Trajectory folds per-frame body positions and controller states into a
// single hash. Two runs with identical input produce identical sums.
type Trajectory struct {
	h      *xxh3.Hasher
	buf    []byte
	frames int
}

// NewTrajectory creates an empty trajectory hash
func NewTrajectory() *Trajectory {
	return &Trajectory{
		h:   xxh3.New(),
		buf: make([]byte, 0, 128),
	}
}

// Add appends one frame
func (t *Trajectory) Add(pos mgl64.Vec3, c entity.Character) {
	b := t.buf[:0]
	for _, v := range pos {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
	}
	b = append(b,
		byte(c.Locomotion),
		byte(c.Gait),
		boolByte(c.Grounded),
		boolByte(c.Crouching),
		boolByte(c.Combat.Active),
		byte(c.Combat.Next),
		byte(c.Combat.Pose+1),
	)
	_, _ = t.h.Write(b)
	t.buf = b
	t.frames++
}

// Frames returns how many frames were added
func (t *Trajectory) Frames() int {
	return t.frames
}

// Sum returns the hash of every frame added so far
func (t *Trajectory) Sum() uint64 {
	return t.h.Sum64()
}

// String returns Sum as fixed-width hex
func (t *Trajectory) String() string {
	return fmt.Sprintf("%016x", t.Sum())
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
