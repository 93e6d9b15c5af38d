package pub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/sown/kmibot/internal/domain"
)

// selections tracks in-flight pub choosers. Each interactive prompt gets a
// single-assignment future: the initiating handler waits on the channel, the
// component callback completes it, and a timeout resolves it with
// domain.ErrNoSelection.
type selections struct {
	mu      sync.Mutex
	pending map[string]*pendingSelection
}

type pendingSelection struct {
	pubs map[string]domain.Pub
	ch   chan domain.Pub
}

func newSelections() *selections {
	return &selections{pending: make(map[string]*pendingSelection)}
}

func (s *selections) create(id string, pubs []domain.Pub) <-chan domain.Pub {
	byValue := make(map[string]domain.Pub, len(pubs))
	for _, p := range pubs {
		byValue[p.ID.String()] = p
	}

	ch := make(chan domain.Pub, 1)
	s.mu.Lock()
	s.pending[id] = &pendingSelection{pubs: byValue, ch: ch}
	s.mu.Unlock()
	return ch
}

// complete resolves a pending chooser. Returns false when the prompt has
// already timed out or the value is unknown.
func (s *selections) complete(id, value string) (domain.Pub, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok {
		return domain.Pub{}, false
	}
	pub, ok := p.pubs[value]
	if !ok {
		return domain.Pub{}, false
	}
	delete(s.pending, id)
	p.ch <- pub
	return pub, true
}

func (s *selections) drop(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// expire removes a pending chooser, reporting whether it was still
// unresolved. A false return means a click completed it first and its
// channel already holds the chosen pub.
func (s *selections) expire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

// choosePub responds to the interaction with an ephemeral select menu and
// suspends until the user picks a pub or the prompt times out.
func (m *Module) choosePub(ctx context.Context, ic *discordgo.InteractionCreate, prompt string) (*domain.Pub, error) {
	pubs, err := m.pubs.Pubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pubs: %w", err)
	}

	id := selectPrefix + uuid.NewString()
	ch := m.selections.create(id, pubs)
	defer m.selections.drop(id)

	options := make([]discordgo.SelectMenuOption, 0, len(pubs))
	for _, p := range pubs {
		opt := discordgo.SelectMenuOption{
			Label: p.Name,
			Value: p.ID.String(),
		}
		if p.Emoji != "" {
			opt.Emoji = &discordgo.ComponentEmoji{Name: p.Emoji}
		}
		options = append(options, opt)
	}

	err = m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: prompt,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    id,
							Placeholder: "Choose a pub...",
							Options:     options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("send pub chooser: %w", err)
	}

	select {
	case pub := <-ch:
		return &pub, nil
	case <-time.After(selectionTimeout):
		if !m.selections.expire(id) {
			// A click resolved the prompt just as it expired. Honour it,
			// since the clicker has already been told their choice stuck.
			pub := <-ch
			return &pub, nil
		}
		return nil, domain.ErrNoSelection
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// handleSelection completes the future created by choosePub and confirms the
// choice in place of the chooser message.
func (m *Module) handleSelection(ic *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData) {
	if len(data.Values) == 0 {
		return
	}

	pub, ok := m.selections.complete(data.CustomID, data.Values[0])
	if !ok {
		m.respondUpdate(ic, "This selection has expired.")
		return
	}

	m.respondUpdate(ic, fmt.Sprintf("%s %s has been selected", pub.Emoji, pub.Name))
}
