package ingestion

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// DefaultTesseractBinary is the tesseract executable looked up on PATH when
// no explicit binary is configured.
const DefaultTesseractBinary = "tesseract"

// TesseractOCR shells out to the tesseract binary to recover text from
// scanned documents. It is used only when primary extraction yields blank
// text.
type TesseractOCR struct {
	// Binary overrides the tesseract executable path. Empty means PATH lookup.
	Binary string
}

// RecognizeText runs OCR over the document at path and returns the
// recognized text.
func (o *TesseractOCR) RecognizeText(ctx context.Context, path string) (string, error) {
	binary := o.Binary
	if binary == "" {
		binary = DefaultTesseractBinary
	}

	// "stdout" makes tesseract write recognized text to standard output.
	cmd := exec.CommandContext(ctx, binary, path, "stdout")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &OCRError{
			Path:    path,
			Message: strings.TrimSpace(stderr.String()),
			Cause:   err,
		}
	}
	return strings.TrimSpace(out.String()), nil
}
