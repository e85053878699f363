package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"topup-admin/internal/analytics"
)

// Synthesizer answers questions from the rule table alone, without any
// external model. It is deterministic for a given dataset and question.
type Synthesizer struct {
	anchor time.Time
	now    func() time.Time
	table  []Rule
}

// NewSynthesizer builds the rule table bound to the reporting anchor date.
// now may be nil, in which case the wall clock is used.
func NewSynthesizer(anchor time.Time, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	s := &Synthesizer{anchor: anchor, now: now}
	s.table = s.rules()
	return s
}

// Answer runs the question through the rule table and returns the first
// non-empty reply. The last rule always matches, so Answer never returns "".
func (s *Synthesizer) Answer(question string, qc *analytics.QueryContext) string {
	q := strings.ToLower(question)
	for _, r := range s.table {
		if !r.Match(q, qc) {
			continue
		}
		if reply := r.Reply(q, qc); reply != "" {
			return reply
		}
	}
	return replyDefault(q, qc)
}

// Assistant answers dashboard questions, preferring the external model when
// one is configured and falling back to the local synthesizer otherwise.
type Assistant struct {
	synth  *Synthesizer
	client *GroqClient
	log    zerolog.Logger
}

func New(synth *Synthesizer, client *GroqClient, log zerolog.Logger) *Assistant {
	return &Assistant{
		synth:  synth,
		client: client,
		log:    log.With().Str("component", "assistant").Logger(),
	}
}

// Respond produces an answer for question against the given query context.
// Any failure of the external model degrades silently to the local rules.
func (a *Assistant) Respond(ctx context.Context, question string, qc *analytics.QueryContext) string {
	if a.client != nil && a.client.Enabled() {
		reply, err := a.client.Complete(ctx, RenderContext(qc), question)
		if err != nil {
			a.log.Warn().Err(err).Msg("external completion failed, using local rules")
		} else if reply != "" {
			return reply
		}
	}
	return a.synth.Answer(question, qc)
}
