package cellcolor

// CharProbe reports the foreground color of one character of rendered cell
// text. Implementations typically wrap a rendering engine's text cursor, so
// each call may be slow and may fail independently of its neighbors.
type CharProbe interface {
	CharColor(index int) (RGB, error)
}

// CharProbeFunc adapts a plain function to the CharProbe interface.
type CharProbeFunc func(index int) (RGB, error)

func (f CharProbeFunc) CharColor(index int) (RGB, error) {
	return f(index)
}

// ScanString probes text one character at a time, left to right, and merges
// consecutive same-color characters into segments. A failed probe degrades
// that character to black with IsDefault set; it never aborts the scan and
// is never retried. Probe indices count runes, starting at zero.
func ScanString(text string, probe CharProbe) []Segment {
	var seg StreamSegmenter
	i := 0
	for _, ch := range text {
		color, err := probe.CharColor(i)
		if err != nil {
			seg.Push(ch, RGB{}, true)
		} else {
			seg.Push(ch, color, false)
		}
		i++
	}
	return seg.Flush()
}
