package naming

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestTrackFilename_Basic(t *testing.T) {
	got := TrackFilename("Artist", "Album", 0, 1, "Song Title")
	want := "Artist-Album-01-Song_Title.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_SpacesToUnderscores(t *testing.T) {
	got := TrackFilename("The Beatles", "Abbey Road", 0, 2, "Come Together")
	want := "The_Beatles-Abbey_Road-02-Come_Together.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_SlashReplaced(t *testing.T) {
	// AC/DC should become AC_DC (slash is illegal in filenames)
	got := TrackFilename("AC/DC", "Back in Black", 0, 1, "Hells Bells")
	want := "AC_DC-Back_in_Black-01-Hells_Bells.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_RemovesApostrophe(t *testing.T) {
	// Apostrophes removed for shell safety (no quoting needed)
	got := TrackFilename("The Who", "Who's Next", 0, 3, "Won't Get Fooled Again")
	want := "The_Who-Whos_Next-03-Wont_Get_Fooled_Again.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_RemovesDoubleQuotes(t *testing.T) {
	// Double quotes removed for shell safety
	got := TrackFilename(`Richard "Groove" Holmes`, "Album", 0, 1, "Song")
	want := "Richard_Groove_Holmes-Album-01-Song.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_ShellSafe(t *testing.T) {
	// Shell-special characters are replaced, trailing underscores trimmed
	got := TrackFilename("Test$Artist", "Album!", 0, 1, "Song?")
	want := "Test_Artist-Album-01-Song.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_ShellSafe_Integration(t *testing.T) {
	// Skip if bash not available
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	// Filenames with various problematic characters (pre-sanitization)
	testCases := []struct {
		artist string
		album  string
		title  string
	}{
		{"AC/DC", "Back in Black", "Hells Bells"},
		{"The Who", "Who's Next", "Won't Get Fooled Again"},
		{`Richard "Groove" Holmes`, "Album", "Song"},
		{"Test$Artist", "Album!", "Song?"},
		{"Artist", "Album [Deluxe]", "Track (Live)"},
		{"Artist", "Album", "Song & Dance"},
		{"Artist", "Album", "Part 1; Part 2"},
	}

	tmpDir := t.TempDir()

	for _, tc := range testCases {
		filename := TrackFilename(tc.artist, tc.album, 0, 1, tc.title)
		fullPath := filepath.Join(tmpDir, filename)

		if err := os.WriteFile(fullPath, []byte("test"), 0644); err != nil {
			t.Errorf("Failed to create file %q: %v", filename, err)
			continue
		}

		// An unquoted reference must survive the shell untouched
		cmd := exec.Command("bash", "-c", "cat "+filename)
		cmd.Dir = tmpDir
		output, err := cmd.Output()
		if err != nil {
			t.Errorf("Filename %q requires shell quoting: %v", filename, err)
			continue
		}
		if string(output) != "test" {
			t.Errorf("Filename %q: unexpected output %q", filename, output)
		}
	}
}

func TestTrackFilename_MultiDisc(t *testing.T) {
	// Multi-disc: disc > 0 adds CDN prefix
	// Note: ? is replaced with underscore then trimmed
	got := TrackFilename("Pink Floyd", "The Wall", 1, 1, "In the Flesh?")
	want := "Pink_Floyd-The_Wall-CD1-01-In_the_Flesh.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_TrackPadding(t *testing.T) {
	// Single digit tracks should be zero-padded
	got := TrackFilename("Artist", "Album", 0, 9, "Track Nine")
	want := "Artist-Album-09-Track_Nine.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestCompilationFilename(t *testing.T) {
	// Compilation: different format with track artist included
	got := CompilationFilename("80s Hits", 0, 1, "A-ha", "Take On Me")
	want := "80s_Hits-01-A-ha-Take_On_Me.mp3"

	if got != want {
		t.Errorf("CompilationFilename() = %q, want %q", got, want)
	}
}

func TestCompilationFilename_MultiDisc(t *testing.T) {
	got := CompilationFilename("Now 100", 2, 5, "Queen", "Bohemian Rhapsody")
	want := "Now_100-CD2-05-Queen-Bohemian_Rhapsody.mp3"

	if got != want {
		t.Errorf("CompilationFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_CollapsesUnderscores(t *testing.T) {
	// "Heavy D & The Boyz" has " & " which becomes "___" without collapsing
	got := TrackFilename("Heavy D & The Boyz", "Album", 0, 1, "Song")
	want := "Heavy_D_The_Boyz-Album-01-Song.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestTrackFilename_NonASCII(t *testing.T) {
	// Non-ASCII should be normalized to ASCII equivalents
	got := TrackFilename("Tone-Lōc", "Album", 0, 1, "Café")
	want := "Tone-Loc-Album-01-Cafe.mp3"

	if got != want {
		t.Errorf("TrackFilename() = %q, want %q", got, want)
	}
}

func TestReleaseDir(t *testing.T) {
	got := ReleaseDir("The Beatles", "Abbey Road", 1969)
	want := "The_Beatles-Abbey_Road-1969"

	if got != want {
		t.Errorf("ReleaseDir() = %q, want %q", got, want)
	}
}

func TestReleaseDir_NoYear(t *testing.T) {
	got := ReleaseDir("AC/DC", "Back in Black", 0)
	want := "AC_DC-Back_in_Black"

	if got != want {
		t.Errorf("ReleaseDir() = %q, want %q", got, want)
	}
}

// BenchmarkSanitize measures the performance of filename sanitization.
// Run with: go test -bench=. -benchmem ./internal/naming/
func BenchmarkSanitize(b *testing.B) {
	// Representative inputs with various special characters
	inputs := []string{
		"Simple Artist",
		"AC/DC",
		"The Who's Greatest Hits",
		`Richard "Groove" Holmes`,
		"Test$Artist & Friends (Live) [Deluxe Edition]",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range inputs {
			_ = TrackFilename(input, "Album", 0, 1, "Title")
		}
	}
}
