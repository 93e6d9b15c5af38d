package pub

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sown/kmibot/internal/domain"
)

func TestSelections_CompleteResolvesFuture(t *testing.T) {
	s := newSelections()

	pub := domain.Pub{ID: uuid.New(), Name: "The Crown"}
	ch := s.create("pub:select:abc", []domain.Pub{pub})

	got, ok := s.complete("pub:select:abc", pub.ID.String())
	require.True(t, ok)
	assert.Equal(t, pub.ID, got.ID)

	select {
	case resolved := <-ch:
		assert.Equal(t, pub.ID, resolved.ID)
	default:
		t.Fatal("future was not resolved")
	}
}

func TestSelections_CompleteIsSingleAssignment(t *testing.T) {
	s := newSelections()

	pub := domain.Pub{ID: uuid.New(), Name: "The Crown"}
	s.create("pub:select:abc", []domain.Pub{pub})

	_, ok := s.complete("pub:select:abc", pub.ID.String())
	require.True(t, ok)

	// A second click on the same chooser finds nothing to resolve.
	_, ok = s.complete("pub:select:abc", pub.ID.String())
	assert.False(t, ok)
}

func TestSelections_UnknownValueRejected(t *testing.T) {
	s := newSelections()

	pub := domain.Pub{ID: uuid.New(), Name: "The Crown"}
	s.create("pub:select:abc", []domain.Pub{pub})

	_, ok := s.complete("pub:select:abc", uuid.NewString())
	assert.False(t, ok)
}

func TestSelections_ExpireRemovesUnresolvedChooser(t *testing.T) {
	s := newSelections()

	pub := domain.Pub{ID: uuid.New(), Name: "The Crown"}
	s.create("pub:select:abc", []domain.Pub{pub})

	require.True(t, s.expire("pub:select:abc"))

	// Clicks after expiry find nothing to resolve.
	_, ok := s.complete("pub:select:abc", pub.ID.String())
	assert.False(t, ok)
}

func TestSelections_ExpireLosesToCompletedClick(t *testing.T) {
	s := newSelections()

	pub := domain.Pub{ID: uuid.New(), Name: "The Crown"}
	ch := s.create("pub:select:abc", []domain.Pub{pub})

	_, ok := s.complete("pub:select:abc", pub.ID.String())
	require.True(t, ok)

	// The click won: expire reports the chooser as already resolved and
	// the chosen pub is waiting on the channel.
	require.False(t, s.expire("pub:select:abc"))
	select {
	case resolved := <-ch:
		assert.Equal(t, pub.ID, resolved.ID)
	default:
		t.Fatal("completed chooser left no pub on the channel")
	}
}

func TestSelections_DroppedChooserExpires(t *testing.T) {
	s := newSelections()

	pub := domain.Pub{ID: uuid.New(), Name: "The Crown"}
	s.create("pub:select:abc", []domain.Pub{pub})
	s.drop("pub:select:abc")

	_, ok := s.complete("pub:select:abc", pub.ID.String())
	assert.False(t, ok)
}
