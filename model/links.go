package model

// ShowTorrentContentsURL is the reserved virtual link target used for
// the "display contents" link of torrent folders. It maps to the
// show_contents hotspot instead of a literal URL hotspot.
const ShowTorrentContentsURL = "#show-torrent-contents"

// LinkSpan marks a hyperlink run inside a description. Start and End
// are rune offsets into the description text, half-open.
type LinkSpan struct {
	Start int
	End   int
	URL   string
}

// NormalizeLinks returns the spans that are usable against a text of
// textLen runes: in-order, non-overlapping, non-empty, and inside the
// text. Spans violating any of that are dropped; the input is trusted
// to be sorted, so a span overlapping its predecessor is the one
// discarded.
func NormalizeLinks(links []LinkSpan, textLen int) []LinkSpan {
	if len(links) == 0 {
		return nil
	}
	out := make([]LinkSpan, 0, len(links))
	pos := 0
	for _, link := range links {
		if link.Start < pos || link.End <= link.Start || link.End > textLen {
			continue
		}
		out = append(out, link)
		pos = link.End
	}
	return out
}

// LinkAt returns the link covering the given rune index, if any.
func LinkAt(links []LinkSpan, index int) (LinkSpan, bool) {
	for _, link := range links {
		if link.Start <= index && index < link.End {
			return link, true
		}
	}
	return LinkSpan{}, false
}
