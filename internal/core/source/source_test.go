package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/atelier/internal/core/source"
)

/*
TestFind covers strategy dispatch and per-site name extraction.
*/
func TestFind(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		wantName      string
		wantURLString string
	}{
		{"pixiv_stacc", "https://www.pixiv.net/stacc/zun", "zun", "https://www.pixiv.net/stacc/zun"},
		{"pixiv_member_page_no_name", "https://www.pixiv.net/member.php?id=123", "", "https://www.pixiv.net/member.php?id=123"},
		{"twitter_handle", "https://twitter.com/artist_handle", "artist_handle", "https://twitter.com/artist_handle"},
		{"twitter_handle_with_status", "https://twitter.com/artist_handle/status/99", "artist_handle", "https://twitter.com/artist_handle/status/99"},
		{"x_dot_com", "https://x.com/artist_handle", "artist_handle", "https://x.com/artist_handle"},
		{"twitter_reserved_root", "https://twitter.com/search", "", "https://twitter.com/search"},
		{"generic_site", "https://artistname.example/gallery", "", "https://artistname.example/gallery"},
		{"unparseable", "not a url", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := source.Find(tt.url)
			assert.Equal(t, tt.wantName, seed.Name)
			assert.Equal(t, tt.wantURLString, seed.URLString)
		})
	}
}
