package cellcolor

import "strings"

// Atom is one colored piece of cell text: a rich-text run, or a single
// character from a probe scan. Atoms are the common input to both
// segmentation strategies.
type Atom struct {
	Text      string
	Color     RGB
	IsDefault bool
}

// Segmenter groups an ordered sequence of atoms into display segments. Both
// implementations preserve the text exactly: segment texts joined in order
// equal the atom texts joined in order.
type Segmenter interface {
	Segment(atoms []Atom) []Segment
}

// RunSegmenter emits one segment per atom. Rich-text run boundaries are
// deliberate formatting breaks, so adjacent runs are kept separate even when
// they resolve to the same color. Empty-text atoms produce no segment.
type RunSegmenter struct{}

func (RunSegmenter) Segment(atoms []Atom) []Segment {
	var segs []Segment
	for _, a := range atoms {
		if a.Text == "" {
			continue
		}
		segs = append(segs, Segment{Color: a.Color, Text: a.Text, IsDefault: a.IsDefault})
	}
	return segs
}

// StreamSegmenter merges consecutive same-color characters into one segment.
// It is built for probe-driven input, where characters arrive one at a time
// with no run boundaries: push each character as it is probed, then Flush.
// State is a single open run, so arbitrarily long input needs no buffering
// and no lookahead.
//
// The zero value is ready to use. A StreamSegmenter must not be reused after
// Flush.
type StreamSegmenter struct {
	open      bool
	color     RGB
	isDefault bool
	text      strings.Builder
	segs      []Segment
}

// Push appends one character. Color comparison is exact channel equality; a
// change closes the open run. The IsDefault recorded for a segment is the
// flag of the character that started that run.
func (s *StreamSegmenter) Push(ch rune, color RGB, isDefault bool) {
	if s.open && color == s.color {
		s.text.WriteRune(ch)
		return
	}
	s.close()
	s.open = true
	s.color = color
	s.isDefault = isDefault
	s.text.WriteRune(ch)
}

// Flush closes the final run, if any, and returns all segments in order.
func (s *StreamSegmenter) Flush() []Segment {
	s.close()
	return s.segs
}

// Segment implements Segmenter by streaming every character of every atom.
// Unlike RunSegmenter, atom boundaries carry no meaning here: adjacent atoms
// with equal colors merge into one segment.
func (s *StreamSegmenter) Segment(atoms []Atom) []Segment {
	for _, a := range atoms {
		for _, ch := range a.Text {
			s.Push(ch, a.Color, a.IsDefault)
		}
	}
	return s.Flush()
}

func (s *StreamSegmenter) close() {
	if !s.open || s.text.Len() == 0 {
		return
	}
	s.segs = append(s.segs, Segment{Color: s.color, Text: s.text.String(), IsDefault: s.isDefault})
	s.text.Reset()
	s.open = false
}
