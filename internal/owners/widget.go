package owners

import (
	"sort"

	"github.com/robotomize/go-allure-owners/internal/allure"
	"github.com/robotomize/go-allure-owners/internal/slice"
	"github.com/robotomize/go-allure-owners/internal/tree"
)

// WidgetLimit is the maximum and default number of owners shown on the widget.
const WidgetLimit = 10

type WidgetItem struct {
	UID       string           `json:"uid"`
	Name      string           `json:"name"`
	Statistic allure.Statistic `json:"statistic"`
}

// Widget is the dashboard summary. Total counts all owner groups, not only the listed ones.
type Widget struct {
	Items []WidgetItem `json:"items"`
	Total int          `json:"total"`
}

// ToWidget ranks the top-level groups of t worst first and keeps at most limit of them.
// A limit outside (0, WidgetLimit] means WidgetLimit.
func ToWidget(t *tree.Tree, limit int) Widget {
	if limit <= 0 || limit > WidgetLimit {
		limit = WidgetLimit
	}

	groups := t.Groups()
	items := slice.Map(
		groups, func(g *tree.Node) WidgetItem {
			return WidgetItem{
				UID:       g.UID(),
				Name:      g.Name(),
				Statistic: g.Statistic(),
			}
		},
	)

	sort.Slice(
		items, func(i, j int) bool {
			return worse(items[i], items[j])
		},
	)

	if len(items) > limit {
		items = items[:limit]
	}

	return Widget{Items: items, Total: len(groups)}
}

// worse reports whether a ranks before b.
func worse(a, b WidgetItem) bool {
	if c := allure.CompareSeverity(a.Statistic, b.Statistic); c != 0 {
		return c > 0
	}

	if a.Name != b.Name {
		return a.Name < b.Name
	}

	return a.UID < b.UID
}
