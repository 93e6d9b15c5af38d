package ferry

import (
	"encoding/binary"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

var (
	frontOfTrain = []string{":bullettrain_front:", ":bullettrain_side:", ":steam_locomotive:", ":light_rail:"}
	trainParts   = []string{":train:", ":railway_car:"}
)

// Ferrify renders a score as a train: one front token followed by
// ceil(score)-1 body tokens. The generator is seeded so the same
// (score, seed) pair always renders identically; a zero score renders as
// the empty string.
func Ferrify(score float64, seed int64) string {
	count := int(math.Ceil(score))
	if count <= 0 {
		return ""
	}

	r := rand.New(rand.NewSource(seed))

	var b strings.Builder
	b.WriteString(frontOfTrain[r.Intn(len(frontOfTrain))])
	for i := 1; i < count; i++ {
		b.WriteString(trainParts[r.Intn(len(trainParts))])
	}
	return b.String()
}

// SeedForPerson derives a stable Ferrify seed from a person's id.
func SeedForPerson(id uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint64(id[:8]))
}
