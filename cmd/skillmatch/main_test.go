package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "I know Python and SQL")
	jd := writeFile(t, dir, "job.txt", "Looking for Python, Pandas, SQL expert")

	out, err := execute(t, "analyze", "--resume", resume, "--jd", jd)
	require.NoError(t, err)

	assert.Contains(t, out, "Similarity Score: 0.67")
	assert.Contains(t, out, "The candidate is a moderate match for the job.")
	assert.Contains(t, out, "Missing skills: pandas")
	assert.Contains(t, out, "Learn and showcase projects using Pandas.")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "python pandas")
	jd := writeFile(t, dir, "job.md", "python pandas")

	out, err := execute(t, "analyze", "-r", resume, "-j", jd, "--json")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1.0, report["score"])
	assert.Equal(t, "good", report["tier"])
	assert.Empty(t, report["missing_skills"])
}

func TestAnalyzeCommand_PhraseMatching(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "python")
	jd := writeFile(t, dir, "job.txt", "python and machine learning")

	out, err := execute(t, "analyze", "-r", resume, "-j", jd)
	require.NoError(t, err)
	assert.Contains(t, out, "Missing skills: none")

	out, err = execute(t, "analyze", "-r", resume, "-j", jd, "--phrases")
	require.NoError(t, err)
	assert.Contains(t, out, "Missing skills: machine learning")
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	jd := writeFile(t, dir, "job.txt", "python")
	empty := writeFile(t, dir, "empty.txt", "  \n ")

	_, err := execute(t, "analyze", "--jd", jd)
	assert.ErrorContains(t, err, `required flag(s) "resume" not set`)

	_, err = execute(t, "analyze", "-r", empty, "-j", jd)
	assert.ErrorContains(t, err, "resume could not be read")

	_, err = execute(t, "analyze", "-r", empty, "-j", jd, "--core-weight", "0.5")
	assert.ErrorContains(t, err, "invalid")
}

func TestRankCommand(t *testing.T) {
	dir := t.TempDir()
	jd := writeFile(t, dir, "job.txt", "Python, Pandas, SQL")
	strong := writeFile(t, dir, "strong.txt", "python pandas sql")
	weak := writeFile(t, dir, "weak.txt", "python")
	unreadable := writeFile(t, dir, "blank.txt", " ")

	out, err := execute(t, "rank", "--jd", jd, "--workers", "2", weak, unreadable, strong)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "strong.txt")
	assert.Contains(t, lines[1], "1.00")
	assert.Contains(t, lines[2], "weak.txt")
	assert.Contains(t, lines[3], "blank.txt")
	assert.Contains(t, lines[3], "unreadable")
}

func TestRankCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	jd := writeFile(t, dir, "job.txt", "python sql")
	a := writeFile(t, dir, "a.txt", "sql")
	b := writeFile(t, dir, "b.txt", "python")

	out, err := execute(t, "rank", "-j", jd, "--json", a, b)
	require.NoError(t, err)

	var rows []rankedResume
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, a, rows[0].Path, "ties keep path order")
	assert.InDelta(t, 0.5, rows[0].Report.Score, 1e-9)
}

func TestRankCommand_RequiresResumes(t *testing.T) {
	dir := t.TempDir()
	jd := writeFile(t, dir, "job.txt", "python")

	_, err := execute(t, "rank", "--jd", jd)
	assert.Error(t, err)

	_, err = execute(t, "rank", "--jd", jd, "--workers", "0", jd)
	assert.ErrorContains(t, err, "--workers must be at least 1")
}

func TestVocabCommand(t *testing.T) {
	out, err := execute(t, "vocab")
	require.NoError(t, err)

	var file struct {
		Core      []string `yaml:"core"`
		Secondary []string `yaml:"secondary"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	assert.Len(t, file.Core, 10)
	assert.Len(t, file.Secondary, 21)
	assert.Contains(t, file.Core, "machine learning")
}

func TestVocabCommand_CustomFile(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "vocab.yaml", "core: [Go, Kubernetes]\nsecondary: [bash]\n")

	out, err := execute(t, "vocab", "--vocab", vocab)
	require.NoError(t, err)
	assert.Contains(t, out, "- go")
	assert.Contains(t, out, "- kubernetes")
	assert.Contains(t, out, "- bash")
}
