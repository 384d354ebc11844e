package owners

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robotomize/go-allure-owners/internal/allure"
	"github.com/robotomize/go-allure-owners/internal/tree"
)

func outcome(uid, status string, start int64, owners ...string) allure.Test {
	labels := []allure.Label{{Name: "suite", Value: "suite"}}
	for _, o := range owners {
		labels = append(labels, allure.Label{Name: allure.LabelOwner, Value: o})
	}

	return allure.Test{
		UUID:   uid,
		Name:   "test" + uid,
		Status: status,
		Start:  start,
		Stop:   start + 10,
		Labels: labels,
	}
}

// grouping maps group name to the uuids of its leaves, in order.
type grouping struct {
	Name  string
	Leafs []string
}

func groupingOf(t *tree.Tree) []grouping {
	out := make([]grouping, 0)
	for _, g := range t.Groups() {
		gr := grouping{Name: g.Name()}
		for _, leaf := range g.Children() {
			r, _ := leaf.Result()
			gr.Leafs = append(gr.Leafs, r.UUID)
		}
		out = append(out, gr)
	}

	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []allure.Launch
		expected []grouping
	}{
		{
			name:     "test_nil_input",
			expected: []grouping{},
		},
		{
			name:     "test_empty_launch",
			input:    []allure.Launch{{Name: "empty"}},
			expected: []grouping{},
		},
		{
			name: "test_alice_bob",
			input: []allure.Launch{
				{
					Tests: []allure.Test{
						outcome("1", allure.StatusFail, 1, "alice"),
						outcome("2", allure.StatusBroken, 2, "alice"),
						outcome("3", allure.StatusFail, 3, "bob"),
						outcome("4", allure.StatusPass, 4, "bob"),
					},
				},
			},
			expected: []grouping{
				{Name: "alice", Leafs: []string{"1", "2"}},
				{Name: "bob", Leafs: []string{"3"}},
			},
		},
		{
			name: "test_only_failed_and_broken",
			input: []allure.Launch{
				{
					Tests: []allure.Test{
						outcome("1", allure.StatusPass, 1, "alice"),
						outcome("2", allure.StatusSkip, 2, "alice"),
						outcome("3", allure.StatusUnknown, 3, "alice"),
						outcome("4", "garbage", 4, "alice"),
						outcome("5", "FAILED", 5, "alice"),
					},
				},
			},
			expected: []grouping{
				{Name: "alice", Leafs: []string{"5"}},
			},
		},
		{
			name: "test_fan_out",
			input: []allure.Launch{
				{
					Tests: []allure.Test{
						outcome("1", allure.StatusFail, 1, "alice", "bob"),
					},
				},
			},
			expected: []grouping{
				{Name: "alice", Leafs: []string{"1"}},
				{Name: "bob", Leafs: []string{"1"}},
			},
		},
		{
			name: "test_duplicate_owner_label",
			input: []allure.Launch{
				{
					Tests: []allure.Test{
						outcome("1", allure.StatusFail, 1, "alice", " alice", "alice"),
					},
				},
			},
			expected: []grouping{
				{Name: "alice", Leafs: []string{"1"}},
			},
		},
		{
			name: "test_unassigned",
			input: []allure.Launch{
				{
					Tests: []allure.Test{
						outcome("1", allure.StatusFail, 1),
						outcome("2", allure.StatusBroken, 2, ""),
						outcome("3", allure.StatusBroken, 3, "alice"),
					},
				},
			},
			expected: []grouping{
				{Name: UnassignedName, Leafs: []string{"1", "2"}},
				{Name: "alice", Leafs: []string{"3"}},
			},
		},
		{
			name: "test_sorted_by_start_stable",
			input: []allure.Launch{
				{
					Tests: []allure.Test{
						outcome("late", allure.StatusFail, 30, "bob"),
						outcome("first-tie", allure.StatusFail, 10, "alice"),
						outcome("no-start", allure.StatusFail, 0, "alice"),
					},
				},
				{
					Tests: []allure.Test{
						outcome("second-tie", allure.StatusFail, 10, "alice"),
						outcome("middle", allure.StatusBroken, 20, "bob"),
					},
				},
			},
			expected: []grouping{
				{Name: "alice", Leafs: []string{"no-start", "first-tie", "second-tie"}},
				{Name: "bob", Leafs: []string{"middle", "late"}},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				got := Build(tc.input)
				if diff := cmp.Diff(groupingOf(got), tc.expected); diff != "" {
					t.Errorf("bad grouping (+got, -want): %s", diff)
				}

				if name := got.Root().Name(); name != RootName {
					t.Errorf("got: %s, want: %s", name, RootName)
				}
			},
		)
	}
}

func TestBuild_UnassignedDoesNotMergeWithOwner(t *testing.T) {
	t.Parallel()

	got := Build(
		[]allure.Launch{
			{
				Tests: []allure.Test{
					outcome("1", allure.StatusFail, 1),
					outcome("2", allure.StatusFail, 2, UnassignedName),
				},
			},
		},
	)

	groups := got.Groups()
	if len(groups) != 2 {
		t.Fatalf("got: %d, want: %d", len(groups), 2)
	}

	if groups[0].UID() == groups[1].UID() {
		t.Errorf("placeholder and owner groups share uid %s", groups[0].UID())
	}
}

func TestToJSONTree(t *testing.T) {
	t.Parallel()

	r := outcome("1", allure.StatusFail, 100, "alice")
	r.Parameters = []allure.Parameter{{Name: "browser", Value: "firefox"}}

	tr := Build([]allure.Launch{{Tests: []allure.Test{r, outcome("2", allure.StatusBroken, 0, "alice")}}})
	root := tr.Root()
	group := tr.Groups()[0]

	expected := JSONTree{
		UID:  root.UID(),
		Name: RootName,
		Children: []JSONNode{
			{
				UID:       group.UID(),
				Name:      "alice",
				Statistic: &allure.Statistic{Failed: 1, Broken: 1, Total: 2},
				Children: []JSONNode{
					{
						UID:       "2",
						Name:      "test2",
						ParentUID: group.UID(),
						Status:    allure.StatusBroken,
						Time:      &Time{Stop: 10},
					},
					{
						UID:        "1",
						Name:       "test1",
						ParentUID:  group.UID(),
						Status:     allure.StatusFail,
						Time:       &Time{Start: 100, Stop: 110, Duration: 10},
						Parameters: []string{"firefox"},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(ToJSONTree(tr), expected); diff != "" {
		t.Errorf("bad json tree (+got, -want): %s", diff)
	}
}

func TestToJSONTree_Empty(t *testing.T) {
	t.Parallel()

	got := ToJSONTree(Build(nil))
	if got.Name != RootName {
		t.Errorf("got: %s, want: %s", got.Name, RootName)
	}

	if got.Children == nil || len(got.Children) != 0 {
		t.Errorf("got: %v, want empty children", got.Children)
	}
}
