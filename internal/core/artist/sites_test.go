package artist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestIsDenylistedSite checks the generic-hosting-domain denylist that stops
progressive URL truncation.
*/
func TestIsDenylistedSite(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"bare_listed_domain", "http://pixiv.net/", true},
		{"https_listed_domain", "https://twitter.com/", true},
		{"subdomain_of_listed", "http://www.pixiv.net/", true},
		{"deep_subdomain", "http://blog-imgs-32.fc2.com/", true},
		{"listed_domain_with_path", "http://pixiv.net/users/123/", false},
		{"unlisted_domain", "http://artistname.example/", false},
		{"listed_path_entry", "http://www.artstation.com/", true},
		{"not_a_url", "pixiv.net", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDenylistedSite(tt.url))
		})
	}
}
