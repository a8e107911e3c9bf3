// Package strengthapi exposes the scoring core over HTTP. The handler owns
// no state beyond the swappable matcher; analysis itself is pure.
package strengthapi

import (
	"sync/atomic"

	"github.com/5w1tchy/passcheck-api/internal/strength"
)

// Provider hands out the current matcher and lets the admin surface swap in
// a rebuilt one atomically. Readers never block; an in-flight analysis just
// finishes against the matcher it started with.
type Provider struct {
	cur atomic.Pointer[strength.Matcher]
}

func NewProvider(m *strength.Matcher) *Provider {
	p := &Provider{}
	if m == nil {
		m = strength.Default()
	}
	p.cur.Store(m)
	return p
}

func (p *Provider) Matcher() *strength.Matcher { return p.cur.Load() }

func (p *Provider) Swap(m *strength.Matcher) {
	if m != nil {
		p.cur.Store(m)
	}
}

type Handler struct {
	Provider *Provider
}

func NewHandler(p *Provider) *Handler {
	return &Handler{Provider: p}
}
