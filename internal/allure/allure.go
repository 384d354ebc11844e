package allure

import "strings"

const (
	StatusPass    = "passed"
	StatusFail    = "failed"
	StatusSkip    = "skipped"
	StatusBroken  = "broken"
	StatusUnknown = "unknown"
)

const LabelOwner = "owner"

type Test struct {
	UUID        string       `json:"uuid"`
	TestCaseID  string       `json:"testCaseId"`
	HistoryID   string       `json:"historyId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Stage       string       `json:"stage"`
	Steps       []Step       `json:"steps"`
	Start       int64        `json:"start"`
	Stop        int64        `json:"stop"`
	FullName    string       `json:"fullName"`
	Parameters  []Parameter  `json:"parameters"`
	Labels      []Label      `json:"labels"`
	Attachments []Attachment `json:"attachments"`
}

// LabelValues returns the values of all labels with the given name in declaration order.
func (t *Test) LabelValues(name string) []string {
	values := make([]string, 0)
	for _, l := range t.Labels {
		if l.Name == name {
			values = append(values, l.Value)
		}
	}

	return values
}

// NormalizedStatus returns the lower-cased status, or StatusUnknown if it is not one of the known statuses.
func (t *Test) NormalizedStatus() string {
	return NormalizeStatus(t.Status)
}

func NormalizeStatus(status string) string {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case StatusPass, StatusFail, StatusSkip, StatusBroken:
		return s
	default:
		return StatusUnknown
	}
}

// Launch is the set of results read from one results directory.
type Launch struct {
	Name  string
	Err   error
	Tests []Test
}

type Step struct {
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	Stage       string       `json:"stage"`
	Steps       []Step       `json:"steps"`
	Attachments []Attachment `json:"attachments"`
	Parameters  []Parameter  `json:"parameters"`
	Start       int64        `json:"start"`
	Stop        int64        `json:"stop"`
}

type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type"`
}
