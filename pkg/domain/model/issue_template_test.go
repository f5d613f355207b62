package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

func TestParseIssueTemplate(t *testing.T) {
	t.Run("front matter with title and labels", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: Fix bug\nlabels: [bug]\n---\nDo the thing."))).NoError(t)
		gt.V(t, tmpl.Title).Equal("Fix bug")
		gt.V(t, tmpl.Labels).Equal([]string{"bug"})
		gt.V(t, tmpl.Body).Equal("Do the thing.")
	})

	t.Run("no front matter is discarded", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("title: Fix bug\nDo the thing."))).NoError(t)
		gt.V(t, tmpl).Equal(nil)
	})

	t.Run("unclosed front matter is discarded", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: Fix bug\nDo the thing."))).NoError(t)
		gt.V(t, tmpl).Equal(nil)
	})

	t.Run("missing title is discarded", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\nlabels: [bug]\n---\nbody"))).NoError(t)
		gt.V(t, tmpl).Equal(nil)
	})

	t.Run("blank title is discarded", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: \"  \"\n---\nbody"))).NoError(t)
		gt.V(t, tmpl).Equal(nil)
	})

	t.Run("empty input is discarded", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate(nil)).NoError(t)
		gt.V(t, tmpl).Equal(nil)
	})

	t.Run("labels are optional", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: Setup\n---\n"))).NoError(t)
		gt.V(t, tmpl.Title).Equal("Setup")
		gt.V(t, len(tmpl.Labels)).Equal(0)
		gt.V(t, tmpl.Body).Equal("")
	})

	t.Run("single string label", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: Setup\nlabels: enhancement\n---\nbody\n"))).NoError(t)
		gt.V(t, tmpl.Labels).Equal([]string{"enhancement"})
		gt.V(t, tmpl.Body).Equal("body\n")
	})

	t.Run("block sequence labels", func(t *testing.T) {
		data := "---\ntitle: Setup\nlabels:\n  - good first issue\n  - docs\n---\nbody"
		tmpl := gt.R1(model.ParseIssueTemplate([]byte(data))).NoError(t)
		gt.V(t, tmpl.Labels).Equal([]string{"good first issue", "docs"})
	})

	t.Run("dots close front matter", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: Setup\n...\nbody"))).NoError(t)
		gt.V(t, tmpl.Title).Equal("Setup")
		gt.V(t, tmpl.Body).Equal("body")
	})

	t.Run("dots do not open front matter", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("...\ntitle: Setup\n---\nbody"))).NoError(t)
		gt.V(t, tmpl).Equal(nil)
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\r\ntitle: Setup\r\nlabels: [a, b]\r\n---\r\nline1\r\nline2"))).NoError(t)
		gt.V(t, tmpl.Title).Equal("Setup")
		gt.V(t, tmpl.Labels).Equal([]string{"a", "b"})
		gt.V(t, tmpl.Body).Equal("line1\r\nline2")
	})

	t.Run("body keeps separators after the front matter", func(t *testing.T) {
		tmpl := gt.R1(model.ParseIssueTemplate([]byte("---\ntitle: Setup\n---\nstep 1\n---\nstep 2"))).NoError(t)
		gt.V(t, tmpl.Body).Equal("step 1\n---\nstep 2")
	})

	t.Run("malformed YAML is a parse error", func(t *testing.T) {
		_, err := model.ParseIssueTemplate([]byte("---\ntitle: [unclosed\n---\nbody"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrParse))
	})

	t.Run("non string title is a parse error", func(t *testing.T) {
		_, err := model.ParseIssueTemplate([]byte("---\ntitle:\n  nested: value\n---\nbody"))
		gt.True(t, errors.Is(err, types.ErrParse))
	})

	t.Run("mapping labels is a parse error", func(t *testing.T) {
		_, err := model.ParseIssueTemplate([]byte("---\ntitle: Setup\nlabels:\n  a: b\n---\nbody"))
		gt.True(t, errors.Is(err, types.ErrParse))
	})
}

func TestIsIssueTemplatePath(t *testing.T) {
	testCases := []struct {
		path   string
		expect bool
	}{
		{".github/classroom/issues/1-setup.md", true},
		{".github/classroom/issues/2-task.md", true},
		{".github/classroom/issues/01.md", true},
		{".github/classroom/issues/notes.md", false},
		{".github/classroom/issues/3x-bad.txt", false},
		{".github/classroom/issues/sub/1-nested.md", false},
		{".github/classroom/1-setup.md", false},
		{"1-setup.md", false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			gt.V(t, model.IsIssueTemplatePath(tc.path)).Equal(tc.expect)
		})
	}
}
