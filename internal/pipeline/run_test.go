package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExtractor serves canned text keyed by file name and fails on demand.
type fakeExtractor struct {
	texts  map[string]string
	tables map[string][][][]string
	fail   map[string]bool
}

func (f *fakeExtractor) Extract(path string) (string, [][][]string, error) {
	name := filepath.Base(path)
	if f.fail[name] {
		return "", nil, fmt.Errorf("corrupt PDF: %s", name)
	}
	return f.texts[name], f.tables[name], nil
}

// fakeOCR records which files it was invoked for.
type fakeOCR struct {
	text   string
	err    error
	called []string
}

func (f *fakeOCR) RecognizeText(_ context.Context, path string) (string, error) {
	f.called = append(f.called, filepath.Base(path))
	return f.text, f.err
}

func writeResumeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("placeholder"), 0644))
	}
	return dir
}

const matchingResume = "KEY SKILLS\nPython\nmachine learning\nWORK EXPERIENCE\nBuilt ML pipelines in Python"

const jobDescription = "Looking for a Python engineer with machine learning experience"

func TestRun_HappyPath(t *testing.T) {
	dir := writeResumeFiles(t, "alice.pdf", "bob.pdf")
	extractor := &fakeExtractor{texts: map[string]string{
		"alice.pdf": matchingResume,
		"bob.pdf":   "KEY SKILLS\nGraphic design\nAdobe Photoshop",
	}}

	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Extractor:      extractor,
		OCR:            &fakeOCR{},
	})

	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, "alice.pdf", board.Entries[0].FileName)
	assert.Equal(t, "bob.pdf", board.Entries[1].FileName)
	assert.Greater(t, board.Entries[0].RelevanceScore, board.Entries[1].RelevanceScore)
	assert.Equal(t, types.StatusScored, board.Entries[0].Status)
}

func TestRun_IsolatesSingleDocumentFailure(t *testing.T) {
	dir := writeResumeFiles(t, "bad.pdf", "good.pdf", "worse.pdf")
	extractor := &fakeExtractor{
		texts: map[string]string{
			"good.pdf":  matchingResume,
			"worse.pdf": matchingResume,
		},
		fail: map[string]bool{"bad.pdf": true},
	}

	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Extractor:      extractor,
		OCR:            &fakeOCR{},
	})

	require.NoError(t, err)
	require.Len(t, board.Entries, 3)

	failed := board.Entries[0]
	assert.Equal(t, "bad.pdf", failed.FileName)
	assert.Equal(t, 0.0, failed.RelevanceScore)
	assert.Equal(t, types.StatusFailed, failed.Status)
	assert.Contains(t, failed.Cause, "corrupt PDF")

	for _, entry := range board.Entries[1:] {
		assert.Equal(t, types.StatusScored, entry.Status)
		assert.Greater(t, entry.RelevanceScore, 0.0)
	}
}

func TestRun_OCRFallbackOnBlankText(t *testing.T) {
	dir := writeResumeFiles(t, "scan.pdf")
	extractor := &fakeExtractor{
		texts: map[string]string{"scan.pdf": "   \n  "},
		tables: map[string][][][]string{
			"scan.pdf": {{{"a", "b"}}},
		},
	}
	ocr := &fakeOCR{text: matchingResume}

	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Extractor:      extractor,
		OCR:            ocr,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"scan.pdf"}, ocr.called)
	assert.Greater(t, board.Entries[0].RelevanceScore, 0.0)
}

func TestRun_OCRFailureYieldsZeroEntry(t *testing.T) {
	dir := writeResumeFiles(t, "scan.pdf")
	extractor := &fakeExtractor{texts: map[string]string{"scan.pdf": ""}}
	ocr := &fakeOCR{err: fmt.Errorf("tesseract not installed")}

	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Extractor:      extractor,
		OCR:            ocr,
	})

	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, 0.0, board.Entries[0].RelevanceScore)
	assert.Equal(t, types.StatusFailed, board.Entries[0].Status)
}

type panickyExtractor struct{}

func (panickyExtractor) Extract(string) (string, [][][]string, error) {
	panic("malformed xref table")
}

func TestRun_ExtractorPanicIsAbsorbed(t *testing.T) {
	dir := writeResumeFiles(t, "evil.pdf")

	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Extractor:      panickyExtractor{},
		OCR:            &fakeOCR{},
	})

	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, 0.0, board.Entries[0].RelevanceScore)
	assert.Equal(t, types.StatusFailed, board.Entries[0].Status)
	assert.Contains(t, board.Entries[0].Cause, "malformed xref table")
}

func TestRun_MissingFolderIsFatal(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		ResumeDir:      filepath.Join(t.TempDir(), "does-not-exist"),
		JobDescription: jobDescription,
		Extractor:      &fakeExtractor{},
		OCR:            &fakeOCR{},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResumeFolderNotFound)
}

func TestRun_ParallelWorkersPreserveEnumerationOrder(t *testing.T) {
	names := make([]string, 0, 20)
	texts := make(map[string]string, 20)
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("resume_%02d.pdf", i)
		names = append(names, name)
		texts[name] = matchingResume
	}
	dir := writeResumeFiles(t, names...)

	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Workers:        8,
		Extractor:      &fakeExtractor{texts: texts},
		OCR:            &fakeOCR{},
	})

	require.NoError(t, err)
	require.Len(t, board.Entries, 20)
	for i, entry := range board.Entries {
		assert.Equal(t, names[i], entry.FileName)
	}
}

func TestEnumerateResumes_FiltersByExtension(t *testing.T) {
	dir := writeResumeFiles(t, "a.pdf", "B.PDF", "notes.txt", "c.docx")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0755))

	fileNames, err := EnumerateResumes(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"B.PDF", "a.pdf"}, fileNames)
}

func TestRun_ReportsProgressToCallback(t *testing.T) {
	dir := writeResumeFiles(t, "alice.pdf", "broken.pdf")
	extractor := &fakeExtractor{
		texts: map[string]string{"alice.pdf": matchingResume},
		fail:  map[string]bool{"broken.pdf": true},
	}

	var events []ProgressEvent
	board, err := Run(context.Background(), RunOptions{
		ResumeDir:      dir,
		JobDescription: jobDescription,
		Extractor:      extractor,
		OCR:            &fakeOCR{},
		OnProgress:     func(event ProgressEvent) { events = append(events, event) },
	})

	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, StepEnumerate, events[0].Step)
	assert.Contains(t, events[0].Message, "Found 2 resumes")

	assert.Equal(t, StepDocument, events[1].Step)
	assert.Equal(t, "alice.pdf", events[1].FileName)
	assert.Equal(t, board.Entries[0].RelevanceScore, events[1].Score)
	resume, ok := events[1].Content.(*types.StructuredResume)
	require.True(t, ok, "scored document event should carry the classified resume")
	assert.Contains(t, resume.Lines(types.SectionKeySkills), "Python")

	assert.Equal(t, StepDocument, events[2].Step)
	assert.Equal(t, "broken.pdf", events[2].FileName)
	assert.Contains(t, events[2].Message, "Error processing file broken.pdf")
	assert.Zero(t, events[2].Score)
	assert.Nil(t, events[2].Content)

	assert.Equal(t, StepFinalize, events[3].Step)
	assert.Contains(t, events[3].Message, "Scored 2 resumes")
}
