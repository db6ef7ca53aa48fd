package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestBatchCommandRendersManifest(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	buf := captureLogs(t)

	dir := t.TempDir()
	outputDir := t.TempDir()
	writeSprite(t, dir)
	manifest := filepath.Join(dir, "batch.json")
	if err := os.WriteFile(manifest, []byte(`[{"file":"sprite.txt","bpp":"2"}]`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	viper.Set("output", outputDir)

	if err := batchCmd.RunE(batchCmd, []string{manifest}); err != nil {
		t.Fatalf("batch error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "sprite_0_header_4pix_per_word_2bpp_indexed.png")); err != nil {
		t.Fatalf("expected batch output: %v", err)
	}
	if !strings.Contains(buf.String(), "DPF batch finished") {
		t.Fatalf("expected finish log, got %q", buf.String())
	}
}

func TestBatchCommandReportsFailedJobs(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	captureLogs(t)

	dir := t.TempDir()
	manifest := filepath.Join(dir, "batch.json")
	if err := os.WriteFile(manifest, []byte(`[{"file":"missing.txt"}]`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	viper.Set("output", t.TempDir())

	err := batchCmd.RunE(batchCmd, []string{manifest})
	if err == nil || !strings.Contains(err.Error(), "1 of 1 batch jobs failed") {
		t.Fatalf("batch error = %v", err)
	}
}
