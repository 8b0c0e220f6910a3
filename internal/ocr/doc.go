// Package ocr extracts text from captured frames with an external engine.
//
// The default engine is tesseract invoked in stdout mode. A missing binary
// is reported as a dependency error with no retry.
package ocr
