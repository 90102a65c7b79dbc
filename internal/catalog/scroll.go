package catalog

// DefaultScrollThreshold is how many rows from the bottom of the content
// the viewport must reach before the next page is requested.
const DefaultScrollThreshold = 3

// NearBottom reports whether a viewport showing rows [offset, offset+visible)
// of content that is total rows tall is within threshold rows of the end.
func NearBottom(offset, visible, total, threshold int) bool {
	if threshold < 0 {
		threshold = 0
	}
	return offset+visible >= total-threshold
}

// OnScroll is the scroll trigger: when the viewport is near the bottom it
// returns the next page request, marking it in flight. It reports false when
// the viewport is elsewhere, a request is already running, or no pages remain.
func (s *State) OnScroll(offset, visible, total, threshold int) (PageRequest, bool) {
	if !NearBottom(offset, visible, total, threshold) {
		return PageRequest{}, false
	}

	req, ok := s.NextPage()
	if !ok {
		return PageRequest{}, false
	}
	s.Begin(req)
	return req, true
}
