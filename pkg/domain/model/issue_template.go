package model

import (
	"bytes"
	"path"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// IssueTemplateDir is the directory of issue templates in a starter repository
const IssueTemplateDir = ".github/classroom/issues"

var issueTemplateFileName = regexp.MustCompile(`^[0-9]+.*\.md$`)

// IsIssueTemplatePath returns true if p is a numeric prefixed markdown file placed directly
// under IssueTemplateDir.
func IsIssueTemplatePath(p string) bool {
	if path.Dir(p) != IssueTemplateDir {
		return false
	}
	return issueTemplateFileName.MatchString(path.Base(p))
}

// IssueTemplate is an issue derived from a template file of a starter repository
type IssueTemplate struct {
	Title  string
	Labels []string
	Body   string
}

type issueFrontMatter struct {
	Title  string    `yaml:"title"`
	Labels labelList `yaml:"labels"`
}

// labelList accepts both `labels: [a, b]` and `labels: a`
type labelList []string

func (x *labelList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if s != "" {
			*x = labelList{s}
		}
		return nil

	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*x = list
		return nil

	default:
		return goerr.New("labels must be a string or a sequence of strings", goerr.V("line", node.Line))
	}
}

// ParseIssueTemplate parses a template file. The file starts with a front matter block
// delimited by "---" lines (the closing line may also be "..."), followed by the issue body.
// It returns (nil, nil) when the file has no front matter or no title. Malformed front matter
// is reported as an error satisfying types.ErrParse.
func ParseIssueTemplate(data []byte) (*IssueTemplate, error) {
	header, body, ok := splitFrontMatter(data)
	if !ok {
		return nil, nil
	}

	var fm issueFrontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, goerr.Wrap(types.ErrParse, "invalid front matter",
			goerr.V("error", err.Error()),
		)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return nil, nil
	}

	labels := make([]string, 0, len(fm.Labels))
	for _, label := range fm.Labels {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}

	return &IssueTemplate{
		Title:  title,
		Labels: labels,
		Body:   string(body),
	}, nil
}

// splitFrontMatter returns the YAML block and the remaining body. ok is false when data does
// not start with a separator line or the block is never closed.
func splitFrontMatter(data []byte) (header, body []byte, ok bool) {
	line, rest, found := cutLine(data)
	if !found || !isSeparator(line, false) {
		return nil, nil, false
	}

	start := len(data) - len(rest)
	cursor := rest
	for len(cursor) > 0 {
		line, next, _ := cutLine(cursor)
		if isSeparator(line, true) {
			end := len(data) - len(cursor)
			return data[start:end], next, true
		}
		cursor = next
	}

	return nil, nil, false
}

// cutLine splits data at the first LF. The returned line has no trailing CR or LF.
func cutLine(data []byte) (line, rest []byte, found bool) {
	if len(data) == 0 {
		return nil, nil, false
	}
	line, rest, found = bytes.Cut(data, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, rest, true
}

func isSeparator(line []byte, closing bool) bool {
	s := strings.TrimRight(string(line), " \t")
	if s == "---" {
		return true
	}
	return closing && s == "..."
}
