package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcontent/internal/content"
	"github.com/abhisek/mathcontent/internal/review"
)

// resetFlags restores every flag to its default so commands can be
// executed repeatedly within one test binary.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, v := range []string{
		"MATHCONTENT_CATALOG",
		"MATHCONTENT_OUTPUT",
		"MATHCONTENT_LOG_LEVEL",
		"MATHCONTENT_LOG_FORMAT",
		"MATHCONTENT_BATCH_CONCURRENCY",
	} {
		t.Setenv(v, "")
	}
	t.Setenv("MATHCONTENT_LOG_LEVEL", "error")

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

type runJSON struct {
	Request   content.Request           `json:"request"`
	Generated content.GeneratedContent  `json:"generated"`
	Review    review.Result             `json:"review"`
	Refined   *content.GeneratedContent `json:"refined"`
}

func TestRunCmd_Pass(t *testing.T) {
	out, err := execute(t, "", "run", "-o", "json", "--grade", "5", "--topic", "Types of angles")
	require.NoError(t, err)

	var run runJSON
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.Equal(t, review.StatusPass, run.Review.Status)
	assert.Empty(t, run.Review.Feedback)
	assert.Nil(t, run.Refined)
	assert.Len(t, run.Generated.MCQs, 3)
}

func TestRunCmd_FailRefines(t *testing.T) {
	out, err := execute(t, "", "run", "-o", "json", "-g", "2", "-t", "perimeter")
	require.NoError(t, err)

	var run runJSON
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.Equal(t, review.StatusFail, run.Review.Status)
	assert.Contains(t, run.Review.Feedback, "Some concepts may be too advanced for Grade 3.")
	require.NotNil(t, run.Refined)
}

func TestRunCmd_View(t *testing.T) {
	out, err := execute(t, "", "run", "-g", "2", "-t", "perimeter")
	require.NoError(t, err)
	assert.Contains(t, out, "Generator Output")
	assert.Contains(t, out, "Reviewer Feedback")
	assert.Contains(t, out, "Refined Generator Output")
}

func TestRunCmd_InvalidGrade(t *testing.T) {
	_, err := execute(t, "", "run", "-g", "7", "-t", "angle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid grade 7")
}

func TestRunCmd_InvalidOutput(t *testing.T) {
	_, err := execute(t, "", "run", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestGenerateCmd_EmptyTopic(t *testing.T) {
	out, err := execute(t, "", "generate", "-o", "json", "-t", "   ")
	require.NoError(t, err)

	var c content.GeneratedContent
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, content.EmptyTopicMessage, c.Explanation)
	assert.NotNil(t, c.MCQs)
	assert.Empty(t, c.MCQs)
}

func TestGenerateCmd_Feedback(t *testing.T) {
	plain, err := execute(t, "", "generate", "-o", "json", "-t", "shapes")
	require.NoError(t, err)
	refined, err := execute(t, "", "generate", "-o", "json", "-t", "shapes", "-f", "anything")
	require.NoError(t, err)

	var a, b content.GeneratedContent
	require.NoError(t, json.Unmarshal([]byte(plain), &a))
	require.NoError(t, json.Unmarshal([]byte(refined), &b))
	assert.NotEqual(t, a.Explanation, b.Explanation)
	assert.True(t, strings.HasPrefix(b.Explanation, "Shapes are objects with different forms."))
}

func TestGenerateCmd_ViewShowsVariant(t *testing.T) {
	out, err := execute(t, "", "generate", "-g", "5", "-t", "angles")
	require.NoError(t, err)
	assert.Contains(t, out, "topic angle · advanced variant")
}

func TestReviewCmd_FromStdin(t *testing.T) {
	generated, err := execute(t, "", "generate", "-o", "json", "-g", "2", "-t", "perimeter")
	require.NoError(t, err)

	out, err := execute(t, generated, "review", "-", "-o", "json", "-g", "2", "-t", "perimeter")
	require.NoError(t, err)

	var res review.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, review.StatusFail, res.Status)
	assert.Equal(t, []string{"Some concepts may be too advanced for Grade 3."}, res.Feedback)
}

func TestReviewCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	doc := `{"explanation": "Shapes have forms.", "mcqs": [
		{"question": "q1", "options": ["a","b","c","d"], "answer": "x"},
		{"question": "q2", "options": ["a","b","c","d"], "answer": "a"},
		{"question": "q3", "options": ["a","b","c","d"], "answer": "b"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "", "review", path, "-o", "json", "-g", "4", "-t", "shapes")
	require.NoError(t, err)

	var res review.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"MCQ 1 has an invalid correct answer."}, res.Feedback)
}

func TestReviewCmd_BadJSON(t *testing.T) {
	_, err := execute(t, "not json", "review", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode content")
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	doc := "- grade: 2\n  topic: perimeter\n- grade: 5\n  topic: Types of angles\n- grade: 3\n  topic: ''\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "", "batch", path, "-o", "json", "-c", "2")
	require.NoError(t, err)

	var runs []runJSON
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 3)
	assert.Equal(t, "perimeter", runs[0].Request.Topic)
	assert.Equal(t, review.StatusFail, runs[0].Review.Status)
	assert.Equal(t, review.StatusPass, runs[1].Review.Status)
	assert.Equal(t, []string{"Topic is empty and cannot be validated."}, runs[2].Review.Feedback)
}

func TestBatchCmd_InvalidGrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- grade: 0\n  topic: angle\n"), 0o644))

	_, err := execute(t, "", "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request 1")
}

func TestTopicsCmd(t *testing.T) {
	out, err := execute(t, "", "topics")
	require.NoError(t, err)
	for _, kw := range []string{"angle", "shape", "fraction", "perimeter"} {
		assert.Contains(t, out, kw)
	}
	assert.Contains(t, out, "4 topics")
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	doc := `topics:
  - keyword: area
    name: Area
    explanations:
      standard: Area is the space inside a shape.
    mcqs:
      - question: "Q1?"
        options: [a, b, c, d]
        answer: a
      - question: "Q2?"
        options: [a, b, c, d]
        answer: b
      - question: "Q3?"
        options: [a, b, c, d]
        answer: c
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "", "run", "--catalog", path, "-o", "json", "-g", "4", "-t", "Area of rectangles")
	require.NoError(t, err)

	var run runJSON
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.Equal(t, "Area is the space inside a shape.", run.Generated.Explanation)
	assert.Equal(t, review.StatusPass, run.Review.Status)
}

func TestCatalogFlag_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics: []\n"), 0o644))

	_, err := execute(t, "", "topics", "--catalog", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mathcontent (devel)\n", out)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "", "version", "extra")
	require.Error(t, err)
}
