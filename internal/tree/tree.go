package tree

import (
	"github.com/google/uuid"

	"github.com/robotomize/go-allure-owners/internal/allure"
)

type Kind int

const (
	KindGroup Kind = iota + 1
	KindLeaf
)

// namespace seeds every node uid so that the same tree built from the same results
// always carries the same identifiers.
var namespace = uuid.MustParse("5b7f4d0e-9a3c-4a55-8e0f-1d2c3b4a5f60")

// Group identifies a group a result is placed into. Placeholder groups collect results
// that have no value for the grouping label; they never merge with a real value of the same name.
type Group struct {
	Name        string
	Placeholder bool
}

// Classifier returns the groups a result belongs to. A result is added once to each returned group.
type Classifier func(t allure.Test) []Group

type Node struct {
	kind      Kind
	uid       string
	parentUID string
	name      string
	result    allure.Test
	children  []*Node
	groups    map[Group]*Node
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) UID() string {
	return n.uid
}

// ParentUID is the uid of the group holding a leaf, empty for groups.
func (n *Node) ParentUID() string {
	return n.parentUID
}

func (n *Node) Name() string {
	return n.name
}

// Result returns the wrapped result of a leaf. The second value is false for groups.
func (n *Node) Result() (allure.Test, bool) {
	return n.result, n.kind == KindLeaf
}

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)

	return children
}

// Statistic computes the statistic of the subtree rooted at n. A leaf counts one result
// in the bucket of its status, a group is the sum of its children.
func (n *Node) Statistic() allure.Statistic {
	if n.kind == KindLeaf {
		return allure.StatisticOf(n.result.Status)
	}

	var stat allure.Statistic
	for _, child := range n.children {
		stat = stat.Add(child.Statistic())
	}

	return stat
}

func (n *Node) group(g Group) *Node {
	if child, ok := n.groups[g]; ok {
		return child
	}

	key := n.uid + "/" + g.Name
	if g.Placeholder {
		key = n.uid + "/!" + g.Name
	}

	child := &Node{
		kind:   KindGroup,
		uid:    uuid.NewMD5(namespace, []byte(key)).String(),
		name:   g.Name,
		groups: make(map[Group]*Node),
	}

	n.groups[g] = child
	n.children = append(n.children, child)

	return child
}

func (n *Node) leaf(t allure.Test) {
	uid := t.UUID
	if uid == "" {
		name := t.FullName
		if name == "" {
			name = t.Name
		}
		uid = uuid.NewMD5(namespace, []byte(n.uid+"#"+name)).String()
	}

	n.children = append(
		n.children, &Node{
			kind:      KindLeaf,
			uid:       uid,
			parentUID: n.uid,
			name:      t.Name,
			result:    t,
		},
	)
}

// Tree groups results under a named root using a Classifier.
type Tree struct {
	root     *Node
	classify Classifier
}

func New(name string, classify Classifier) *Tree {
	return &Tree{
		root: &Node{
			kind:   KindGroup,
			uid:    uuid.NewMD5(namespace, []byte(name)).String(),
			name:   name,
			groups: make(map[Group]*Node),
		},
		classify: classify,
	}
}

// Add places t under every group returned by the classifier, creating groups on first use.
// Results classified into no group are not added.
func (t *Tree) Add(result allure.Test) {
	if t.classify == nil {
		return
	}

	for _, g := range t.classify(result) {
		t.root.group(g).leaf(result)
	}
}

func (t *Tree) Root() *Node {
	return t.root
}

// Groups returns the top-level groups in first-encounter order.
func (t *Tree) Groups() []*Node {
	groups := make([]*Node, 0, len(t.root.children))
	for _, child := range t.root.children {
		if child.kind == KindGroup {
			groups = append(groups, child)
		}
	}

	return groups
}

// Walk visits n and its descendants depth-first, parents before children.
func Walk(n *Node, fn func(n *Node, depth int)) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(n *Node, depth int)) {
	fn(n, depth)
	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}
