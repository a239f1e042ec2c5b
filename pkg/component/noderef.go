package component

import (
	"strconv"
	"sync"

	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// RefAttr is the attribute written to elements carrying a NodeRef.
const RefAttr = "data-mdc-ref"

// NodeRef refers to the element rendered with vdom.Ref(ref). It is empty
// until the first commit that renders such an element and becomes empty
// again after a commit that does not.
type NodeRef struct {
	id string

	mu      sync.RWMutex
	current widget.Node
	next    widget.Node
}

var _ vdom.RefTarget = (*NodeRef)(nil)

// UseNodeRef returns the scope's NodeRef for this hook position. Its ID is
// unique within the root and stable for the life of the scope.
func UseNodeRef(s *Scope) *NodeRef {
	return slot(s, HookNodeRef, func() *NodeRef {
		s.rt.refSeq++
		r := &NodeRef{id: "r" + strconv.FormatUint(s.rt.refSeq, 10)}
		s.nodeRefs = append(s.nodeRefs, r)
		s.rt.nodeRefs[r] = struct{}{}
		return r
	})
}

// ID returns the value written to the element's data-mdc-ref attribute.
func (r *NodeRef) ID() string { return r.id }

// Current returns the element the ref is attached to.
func (r *NodeRef) Current() (widget.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, !r.current.IsZero()
}

// AttachElement implements vdom.RefTarget. It is called during commit.
func (r *NodeRef) AttachElement(node *vdom.VNode) {
	node.Props[RefAttr] = r.id
	r.mu.Lock()
	r.next = widget.Node{ID: r.id, Tag: node.Tag}
	r.mu.Unlock()
}

// prepare forgets the element attached by the previous commit.
func (r *NodeRef) prepare() {
	r.mu.Lock()
	r.next = widget.Node{}
	r.mu.Unlock()
}

// publish makes the element found by this commit current.
func (r *NodeRef) publish() {
	r.mu.Lock()
	r.current = r.next
	r.mu.Unlock()
}

func (r *NodeRef) detach() {
	r.mu.Lock()
	r.current = widget.Node{}
	r.next = widget.Node{}
	r.mu.Unlock()
}

// attachRefs assigns every ref target found in tree.
func attachRefs(tree *vdom.VNode) {
	tree.Walk(func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement {
			for _, t := range vdom.RefTargets(n) {
				t.AttachElement(n)
			}
		}
		return true
	})
}
