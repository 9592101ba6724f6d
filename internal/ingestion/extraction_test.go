package ingestion

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractor_MissingFile(t *testing.T) {
	var extractor PDFExtractor

	_, _, err := extractor.Extract(filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Path, "missing.pdf")
}

func TestTesseractOCR_MissingBinary(t *testing.T) {
	ocr := &TesseractOCR{Binary: filepath.Join(t.TempDir(), "no-such-tesseract")}

	_, err := ocr.RecognizeText(context.Background(), "scan.pdf")

	require.Error(t, err)
	var ocrErr *OCRError
	require.ErrorAs(t, err, &ocrErr)
	assert.Equal(t, "scan.pdf", ocrErr.Path)
}

func TestOCRError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &OCRError{Path: "x.pdf", Message: "boom", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "x.pdf")
	assert.Contains(t, err.Error(), "boom")
}
