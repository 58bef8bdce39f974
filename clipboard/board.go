package clipboard

// Board holds the live payload. The zero Board holds NotSet.
type Board struct {
	// Mirror, if set, receives the rendering of every copied payload, for
	// example to put it on the system clipboard.
	Mirror func(text string) error

	cur Payload
}

// Copy replaces the live payload with p. The payload is replaced even when
// Mirror fails; the Mirror error is returned.
func (b *Board) Copy(p Payload) error {
	if p == nil {
		p = NotSet{}
	}
	b.cur = p
	if b.Mirror != nil {
		return b.Mirror(p.String())
	}
	return nil
}

// Current returns the live payload.
func (b *Board) Current() Payload {
	if b.cur == nil {
		return NotSet{}
	}
	return b.cur
}

// Render renders the live payload.
func (b *Board) Render() string {
	return Render(b.Current())
}

// Default is the process wide board used by the package level functions.
var Default = &Board{}

func Copy(p Payload) error {
	return Default.Copy(p)
}

func Current() Payload {
	return Default.Current()
}
