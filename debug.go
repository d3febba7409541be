package tween

// debugMaxGroupDepth and debugMaxChildCount are the thresholds above which
// debug mode warns about group trees that are probably being leaked.
const (
	debugMaxGroupDepth = 32
	debugMaxChildCount = 1000
)

// debugCheckGroup warns when child sits too deep in the tree or its parent
// has too many children. Only called in debug mode.
func (s *Scheduler) debugCheckGroup(child *Group) {
	depth := 0
	for p := child; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxGroupDepth {
		s.log.Warn().
			Str("group", child.Name).
			Int("depth", depth).
			Int("threshold", debugMaxGroupDepth).
			Msg("tween: group tree depth exceeds threshold")
	}
	if parent := child.Parent; parent != nil && len(parent.children) > debugMaxChildCount {
		s.log.Warn().
			Str("group", parent.Name).
			Int("children", len(parent.children)).
			Int("threshold", debugMaxChildCount).
			Msg("tween: group has too many children")
	}
}
