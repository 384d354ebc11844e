package owners

import (
	"github.com/robotomize/go-allure-owners/internal/allure"
	"github.com/robotomize/go-allure-owners/internal/slice"
	"github.com/robotomize/go-allure-owners/internal/tree"
)

// JSONTree is the serializable form of the owners tree written to the report data directory.
type JSONTree struct {
	UID      string     `json:"uid"`
	Name     string     `json:"name"`
	Children []JSONNode `json:"children"`
}

// JSONNode is either a group (Statistic and Children set) or a leaf (ParentUID, Status and Time set).
type JSONNode struct {
	UID        string            `json:"uid"`
	Name       string            `json:"name"`
	Statistic  *allure.Statistic `json:"statistic,omitempty"`
	Children   []JSONNode        `json:"children,omitempty"`
	ParentUID  string            `json:"parentUid,omitempty"`
	Status     string            `json:"status,omitempty"`
	Time       *Time             `json:"time,omitempty"`
	Parameters []string          `json:"parameters,omitempty"`
}

type Time struct {
	Start    int64 `json:"start,omitempty"`
	Stop     int64 `json:"stop,omitempty"`
	Duration int64 `json:"duration,omitempty"`
}

// ToJSONTree maps the tree onto its serializable form, computing group statistics on the way.
func ToJSONTree(t *tree.Tree) JSONTree {
	root := t.Root()

	return JSONTree{
		UID:      root.UID(),
		Name:     root.Name(),
		Children: slice.Map(root.Children(), toJSONNode),
	}
}

func toJSONNode(n *tree.Node) JSONNode {
	if result, ok := n.Result(); ok {
		leaf := JSONNode{
			UID:       n.UID(),
			Name:      n.Name(),
			ParentUID: n.ParentUID(),
			Status:    result.NormalizedStatus(),
			Time:      timeOf(result),
		}

		if len(result.Parameters) > 0 {
			leaf.Parameters = slice.Map(
				result.Parameters, func(p allure.Parameter) string {
					return p.Value
				},
			)
		}

		return leaf
	}

	stat := n.Statistic()

	return JSONNode{
		UID:       n.UID(),
		Name:      n.Name(),
		Statistic: &stat,
		Children:  slice.Map(n.Children(), toJSONNode),
	}
}

func timeOf(t allure.Test) *Time {
	if t.Start == 0 && t.Stop == 0 {
		return nil
	}

	tm := Time{Start: t.Start, Stop: t.Stop}
	if t.Start > 0 && t.Stop >= t.Start {
		tm.Duration = t.Stop - t.Start
	}

	return &tm
}
