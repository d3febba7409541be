package tween

// Group is a grouping container for execution contexts. Groups form a tree
// rooted at Scheduler.Root; disposing a group force-terminates every tween
// running in it or in any descendant group and drops their contexts from the
// pool.
//
// A typical host creates one Group per scene object and disposes it along
// with the object:
//
//	g := sched.NewGroup("enemy-42")
//	fade, _ := tween.New(sched, 1.0, 0.0, 0.5, ease.SineOut, tween.WithGroup[float64](g))
//	fade.Play()
//	// ... later, when the enemy is destroyed:
//	g.Dispose()
type Group struct {
	Name   string
	Parent *Group

	children []*Group
	runners  []*runner
	sched    *Scheduler
	disposed bool
}

func newGroup(s *Scheduler, name string) *Group {
	return &Group{Name: name, sched: s}
}

// NewGroup creates a child group of g.
func (g *Group) NewGroup(name string) *Group {
	child := newGroup(g.sched, name)
	g.AddChild(child)
	return child
}

// AddChild appends child to g's children, removing it from any previous
// parent first. Panics if child is nil, belongs to another scheduler, either
// group is disposed, or child is an ancestor of g.
func (g *Group) AddChild(child *Group) {
	if child == nil {
		panic("tween: cannot add nil group")
	}
	if g.disposed || child.disposed {
		panic("tween: AddChild on disposed group")
	}
	if child.sched != g.sched {
		panic("tween: group belongs to another scheduler")
	}
	if isAncestor(child, g) {
		panic("tween: adding group would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = g
	g.children = append(g.children, child)
	if g.sched.debug {
		g.sched.debugCheckGroup(child)
	}
}

// RemoveChild detaches child from g without disposing it. Tweens in a
// detached group keep running. Panics if child.Parent != g.
func (g *Group) RemoveChild(child *Group) {
	if child.Parent != g {
		panic("tween: group's parent is not this group")
	}
	g.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches g from its parent. No-op without a parent.
func (g *Group) RemoveFromParent() {
	if g.Parent == nil {
		return
	}
	g.Parent.RemoveChild(g)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (g *Group) Children() []*Group {
	return g.children
}

// NumChildren returns the number of child groups.
func (g *Group) NumChildren() int {
	return len(g.children)
}

// NumContexts returns the number of execution contexts owned directly by g,
// bound or available.
func (g *Group) NumContexts() int {
	return len(g.runners)
}

// Dispose detaches g from its parent, force-terminates all tweens running
// under g and its descendants, and removes their contexts from the pool.
// Terminated tweens move to Stopped without firing callbacks.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	g.RemoveFromParent()
	g.dispose()
}

func (g *Group) dispose() {
	g.disposed = true
	for _, child := range g.children {
		child.Parent = nil
		child.dispose()
	}
	g.children = nil
	for _, r := range g.runners {
		g.sched.destroy(r)
	}
	g.runners = nil
	g.Parent = nil
}

// IsDisposed reports whether g has been disposed.
func (g *Group) IsDisposed() bool {
	return g.disposed
}

func (g *Group) addRunner(r *runner) {
	r.group = g
	g.runners = append(g.runners, r)
}

func (g *Group) removeRunner(r *runner) {
	for i, c := range g.runners {
		if c == r {
			copy(g.runners[i:], g.runners[i+1:])
			g.runners[len(g.runners)-1] = nil
			g.runners = g.runners[:len(g.runners)-1]
			break
		}
	}
	r.group = nil
}

// isAncestor reports whether candidate is an ancestor of g (or g itself).
func isAncestor(candidate, g *Group) bool {
	for p := g; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from g.children without clearing
// child.Parent.
func (g *Group) removeChildByPtr(child *Group) {
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			return
		}
	}
}
