package musicbrainz

import "testing"

func TestCoverExt(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"", ".jpg"},
		{"application/octet-stream", ".jpg"},
	}

	for _, tt := range tests {
		if got := CoverExt(tt.mimeType); got != tt.want {
			t.Errorf("CoverExt(%q) = %q, want %q", tt.mimeType, got, tt.want)
		}
	}
}

func TestClientUserAgent(t *testing.T) {
	client := NewClient("test-app", "1.0", "test@example.com")
	defer client.Close()

	want := "test-app/1.0 ( test@example.com )"
	if client.userAgent != want {
		t.Errorf("userAgent = %q, want %q", client.userAgent, want)
	}
}
