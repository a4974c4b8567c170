package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{R: 0, G: 200, B: 0, A: 255})
	return img
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "terrain")
	sc.now = fixedClock

	got := sc.GenerateFilename()
	want := filepath.Join("shots", "terrain_2024-03-09_14-05-07.png")
	if got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}

	sc.SetOutputDir("")
	if got := sc.GenerateFilename(); got != "terrain_2024-03-09_14-05-07.png" {
		t.Errorf("unexpected filename without dir: %q", got)
	}
}

func TestCaptureFromImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sc := NewScreenshotCapture(dir, "terrain")
	sc.now = fixedClock

	path, err := sc.CaptureFromImage(testImage())
	if err != nil {
		t.Fatalf("CaptureFromImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening capture: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding capture: %v", err)
	}
	if decoded.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("unexpected bounds %v", decoded.Bounds())
	}
	r, g, b, _ := decoded.At(1, 2).RGBA()
	if r != 0 || g>>8 != 200 || b != 0 {
		t.Errorf("pixel not preserved: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestCaptureSameSecond(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "terrain")
	sc.now = fixedClock

	first, err := sc.CaptureFromImage(testImage())
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	second, err := sc.CaptureFromImage(testImage())
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}

	if first == second {
		t.Fatalf("captures share filename %q", first)
	}
	if !strings.HasSuffix(second, "-1.png") {
		t.Errorf("expected numeric suffix, got %q", second)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), testImage())
	if err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
