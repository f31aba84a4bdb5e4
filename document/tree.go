package document

import "iter"

// TreeNodeId identifies a node in a Tree. Zero is the null id.
type TreeNodeId uint32

type treeNode[T any] struct {
	parent   TreeNodeId
	children []TreeNodeId
	data     T
}

// Tree is an ordered forest. Node ids are handed out by a monotonic
// counter and are never reused, even after the node is removed.
type Tree[T any] struct {
	nodes  map[TreeNodeId]*treeNode[T]
	roots  []TreeNodeId
	nextId TreeNodeId
}

func NewTree[T any]() *Tree[T] {
	return &Tree[T]{
		nodes: make(map[TreeNodeId]*treeNode[T]),
	}
}

// AppendChild adds a node holding data as the last child of parent.
// A zero parent appends a new root.
func (t *Tree[T]) AppendChild(parent TreeNodeId, data T) TreeNodeId {
	if parent != 0 {
		if _, ok := t.nodes[parent]; !ok {
			return 0
		}
	}

	t.nextId++
	id := t.nextId
	t.nodes[id] = &treeNode[T]{parent: parent, data: data}
	if parent == 0 {
		t.roots = append(t.roots, id)
	} else {
		p := t.nodes[parent]
		p.children = append(p.children, id)
	}
	return id
}

// RemoveRoot removes a root node and its whole subtree.
func (t *Tree[T]) RemoveRoot(id TreeNodeId) bool {
	if !t.NodeIsRoot(id) {
		return false
	}

	var subtree []TreeNodeId
	t.DeepForeach(id, func(n TreeNodeId) {
		subtree = append(subtree, n)
	})
	for _, n := range subtree {
		delete(t.nodes, n)
	}
	for i, r := range t.roots {
		if r == id {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			break
		}
	}
	return true
}

func (t *Tree[T]) Contains(id TreeNodeId) bool {
	_, ok := t.nodes[id]
	return ok
}

func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

func (t *Tree[T]) Roots() []TreeNodeId {
	return append([]TreeNodeId(nil), t.roots...)
}

func (t *Tree[T]) Parent(id TreeNodeId) TreeNodeId {
	if n, ok := t.nodes[id]; ok {
		return n.parent
	}
	return 0
}

func (t *Tree[T]) Children(id TreeNodeId) []TreeNodeId {
	if n, ok := t.nodes[id]; ok {
		return append([]TreeNodeId(nil), n.children...)
	}
	return nil
}

func (t *Tree[T]) Data(id TreeNodeId) T {
	if n, ok := t.nodes[id]; ok {
		return n.data
	}
	var zero T
	return zero
}

func (t *Tree[T]) NodeIsRoot(id TreeNodeId) bool {
	n, ok := t.nodes[id]
	return ok && n.parent == 0
}

func (t *Tree[T]) NodeIsLeaf(id TreeNodeId) bool {
	n, ok := t.nodes[id]
	return ok && len(n.children) == 0
}

// NodeRoot returns the root of the tree containing id, or zero if id is
// unknown.
func (t *Tree[T]) NodeRoot(id TreeNodeId) TreeNodeId {
	if !t.Contains(id) {
		return 0
	}
	for {
		p := t.nodes[id].parent
		if p == 0 {
			return id
		}
		id = p
	}
}

// NodePath returns the ids from the root down to id, both included.
func (t *Tree[T]) NodePath(id TreeNodeId) []TreeNodeId {
	var path []TreeNodeId
	for cur := id; cur != 0 && t.Contains(cur); cur = t.nodes[cur].parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DeepForeach visits id and all its descendants in depth-first pre-order.
func (t *Tree[T]) DeepForeach(id TreeNodeId, fn func(TreeNodeId)) {
	for n := range t.Walk(id) {
		fn(n)
	}
}

// Walk is the lazy form of DeepForeach. Every range over the returned
// sequence starts a fresh traversal.
func (t *Tree[T]) Walk(id TreeNodeId) iter.Seq[TreeNodeId] {
	return func(yield func(TreeNodeId) bool) {
		t.walk(id, yield)
	}
}

func (t *Tree[T]) walk(id TreeNodeId, yield func(TreeNodeId) bool) bool {
	n, ok := t.nodes[id]
	if !ok {
		return true
	}
	if !yield(id) {
		return false
	}
	for _, c := range n.children {
		if !t.walk(c, yield) {
			return false
		}
	}
	return true
}

// DeepForeachWithDepth is DeepForeach that also reports the depth of each
// visited node relative to id.
func (t *Tree[T]) DeepForeachWithDepth(id TreeNodeId, fn func(n TreeNodeId, depth int)) {
	t.deepForeachDepth(id, 0, fn)
}

func (t *Tree[T]) deepForeachDepth(id TreeNodeId, depth int, fn func(TreeNodeId, int)) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	fn(id, depth)
	for _, c := range n.children {
		t.deepForeachDepth(c, depth+1, fn)
	}
}
