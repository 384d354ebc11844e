// Package owners builds the owners breakdown of failed and broken results: a tree grouped
// by the owner label, its JSON form for the report tab and the top owners widget.
package owners

import (
	"sort"
	"strings"

	"github.com/robotomize/go-allure-owners/internal/allure"
	"github.com/robotomize/go-allure-owners/internal/slice"
	"github.com/robotomize/go-allure-owners/internal/tree"
)

const (
	// RootName is the name of the tree root.
	RootName = "owners"

	// JSONFileName is the file name of both the tree and the widget documents.
	JSONFileName = "owners.json"

	// LabelName is the only label results are grouped by.
	LabelName = allure.LabelOwner

	// UnassignedName is the display name of the group holding results without an owner.
	UnassignedName = "Unassigned"
)

// Build returns the owners tree of all failed and broken results of the given launches.
// Results are inserted in start time order; results without a start time go first.
func Build(launches []allure.Launch) *tree.Tree {
	owners := tree.New(RootName, classify)

	results := slice.Filter(
		slice.Flat(
			slice.Map(
				launches, func(l allure.Launch) []allure.Test {
					return l.Tests
				},
			),
		), isProblem,
	)

	sort.SliceStable(
		results, func(i, j int) bool {
			return results[i].Start < results[j].Start
		},
	)

	for _, r := range results {
		owners.Add(r)
	}

	return owners
}

func isProblem(t allure.Test) bool {
	status := t.NormalizedStatus()
	return status == allure.StatusFail || status == allure.StatusBroken
}

func classify(t allure.Test) []tree.Group {
	values := slice.Uniq(
		slice.Filter(
			slice.Map(t.LabelValues(LabelName), strings.TrimSpace), func(v string) bool {
				return v != ""
			},
		),
	)

	if len(values) == 0 {
		return []tree.Group{{Name: UnassignedName, Placeholder: true}}
	}

	return slice.Map(
		values, func(v string) tree.Group {
			return tree.Group{Name: v}
		},
	)
}
