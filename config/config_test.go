package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starfly.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	return path
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	def := Default()

	if cfg.Stars != def.Stars {
		t.Errorf("Expected default Stars %d, got %d", def.Stars, cfg.Stars)
	}
	if cfg.FlySpeed != def.FlySpeed {
		t.Errorf("Expected default FlySpeed %v, got %v", def.FlySpeed, cfg.FlySpeed)
	}
	// CenterY 0.5 is its own inversion
	if cfg.CenterY != 0.5 {
		t.Errorf("Expected CenterY 0.5, got %v", cfg.CenterY)
	}
}

func TestLoadParsesKnownKeys(t *testing.T) {
	path := writeSettings(t, `
Stars = 100
Speed = 1.5
FrameInterval = 16
CenterX = 0.75
CenterY = 0.25
Zoom = 2.0
StarSize = 250
SizeType = 1
DarkestRGB = 32
ColorType = 0
FadePower = 0.5
FadeInTime = 500
Sound = 1
`)
	cfg := Load(path)

	if cfg.Stars != 100 {
		t.Errorf("Expected Stars 100, got %d", cfg.Stars)
	}
	if cfg.FlySpeed != 1.5 {
		t.Errorf("Expected FlySpeed 1.5, got %v", cfg.FlySpeed)
	}
	if cfg.FrameInterval != 16 {
		t.Errorf("Expected FrameInterval 16, got %d", cfg.FrameInterval)
	}
	if cfg.CenterX != 0.75 {
		t.Errorf("Expected CenterX 0.75, got %v", cfg.CenterX)
	}
	// CenterY is stored inverted for the bottom-up color plane
	if cfg.CenterY != 0.75 {
		t.Errorf("Expected inverted CenterY 0.75, got %v", cfg.CenterY)
	}
	if cfg.Zoom != 2.0 {
		t.Errorf("Expected Zoom 2.0, got %v", cfg.Zoom)
	}
	if cfg.StarSize != 250 {
		t.Errorf("Expected StarSize 250, got %v", cfg.StarSize)
	}
	if cfg.SizeType != 1 {
		t.Errorf("Expected SizeType 1, got %d", cfg.SizeType)
	}
	if cfg.DarkestRGB != 32 {
		t.Errorf("Expected DarkestRGB 32, got %d", cfg.DarkestRGB)
	}
	if cfg.ColorType != 0 {
		t.Errorf("Expected ColorType 0, got %d", cfg.ColorType)
	}
	if cfg.FadePower != 0.5 {
		t.Errorf("Expected FadePower 0.5, got %v", cfg.FadePower)
	}
	if cfg.FadeInTime != 500 {
		t.Errorf("Expected FadeInTime 500, got %d", cfg.FadeInTime)
	}
	if !cfg.Sound {
		t.Error("Expected Sound enabled")
	}
}

func TestLoadKeysAreCaseInsensitive(t *testing.T) {
	cfg := Load(writeSettings(t, "STARS = 7\nspeed=0.25\nFaDePoWeR = 2\n"))

	if cfg.Stars != 7 {
		t.Errorf("Expected Stars 7, got %d", cfg.Stars)
	}
	if cfg.FlySpeed != 0.25 {
		t.Errorf("Expected FlySpeed 0.25, got %v", cfg.FlySpeed)
	}
	if cfg.FadePower != 2 {
		t.Errorf("Expected FadePower 2, got %v", cfg.FadePower)
	}
}

func TestLoadLastOccurrenceWins(t *testing.T) {
	cfg := Load(writeSettings(t, "Stars = 10\nStars = 20\nStars = 30\n"))

	if cfg.Stars != 30 {
		t.Errorf("Expected last occurrence 30, got %d", cfg.Stars)
	}
}

func TestLoadIgnoresMalformedLines(t *testing.T) {
	cfg := Load(writeSettings(t, `
this line has no equals sign
Stars = notanumber
Unknown = 5
Speed = 0.125
`))

	if cfg.Stars != Default().Stars {
		t.Errorf("Expected unparseable Stars to keep default, got %d", cfg.Stars)
	}
	if cfg.FlySpeed != 0.125 {
		t.Errorf("Expected FlySpeed 0.125, got %v", cfg.FlySpeed)
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Load(writeSettings(t, "DarkestRGB = 999\nStars = -5\nFrameInterval = 0\n"))

	if cfg.DarkestRGB != 255 {
		t.Errorf("Expected DarkestRGB clamped to 255, got %d", cfg.DarkestRGB)
	}
	if cfg.Stars != 1 {
		t.Errorf("Expected Stars clamped to 1, got %d", cfg.Stars)
	}
	if cfg.FrameInterval != 1 {
		t.Errorf("Expected FrameInterval clamped to 1, got %d", cfg.FrameInterval)
	}
}
