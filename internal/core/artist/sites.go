package artist

import (
	"regexp"
	"strings"
)

// siteDenylist enumerates generic profile/CDN/hosting domains that must
// never be used as a match basis on their own: once progressive truncation
// has stripped a candidate URL down to one of these, any artist whose
// stored URLs share only the hosting domain would be a false positive.
//
// Subdomains are automatically included: "twitter.com" matches
// "www.twitter.com", "mobile.twitter.com" and any other subdomain.
var siteDenylist = []string{
	"artstation.com/artist",
	"www.artstation.com",
	"ask.fm",
	"bcyimg.com",
	"bcyimg.com/drawer",
	"bcy.net",
	"bcy.net/illust/detail",
	"bcy.net/u",
	"behance.net",
	"booru.org",
	"booru.org/drawfriends",
	"donmai.us",
	"donmai.us/users",
	"derpibooru.org",
	"derpibooru.org/tags",
	"deviantart.com",
	"deviantart.net",
	"dlsite.com",
	"doujinshi.org",
	"doujinshi.org/browse/circle",
	"doujinshi.org/browse/author",
	"doujinshi.mugimugi.org",
	"doujinshi.mugimugi.org/browse/author",
	"doujinshi.mugimugi.org/browse/circle",
	"drawcrowd.net",
	"drawr.net",
	"dropbox.com",
	"dropbox.com/sh",
	"dropbox.com/u",
	"e-hentai.org",
	"e621.net",
	"e621.net/post/index/1",
	"enty.jp",
	"enty.jp/users",
	"facebook.com",
	"fantia.jp",
	"fantia.jp/fanclubs",
	"fav.me",
	"furaffinity.net",
	"furaffinity.net/user",
	"gelbooru.com",
	"inkbunny.net",
	"plus.google.com",
	"hentai-foundry.com",
	"hentai-foundry.com/pictures/user",
	"hentai-foundry.com/user",
	"i.imgur.com",
	"instagram.com",
	"iwara.tv",
	"iwara.tv/users",
	"kym-cdn.com",
	"livedoor.blogimg.jp",
	"monappy.jp",
	"monappy.jp/u",
	"mstdn.jp",
	"nicoseiga.jp",
	"nicoseiga.jp/priv",
	"nicovideo.jp",
	"nicovideo.jp/user",
	"nicovideo.jp/user/illust",
	"nijie.info",
	"patreon.com",
	"pawoo.net",
	"pawoo.net/web/accounts",
	"picarto.tv",
	"picarto.tv/live",
	"pictaram.com",
	"pinterest.com",
	"pixiv.cc",
	"pixiv.net",
	"pixiv.net/stacc",
	"i.pximg.net",
	"plurk.com",
	"privatter.net",
	"privatter.net/u",
	"rule34.paheal.net",
	"rule34.paheal.net/post/list",
	"sankakucomplex.com",
	"society6.com",
	"tinami.com",
	"tinami.com/creator/profile",
	"data.tumblr.com",
	"twipple.jp",
	"twipple.jp/user",
	"twitch.tv",
	"twitpic.com",
	"twitpic.com/photos",
	"twitter.com",
	"twitter.com/i/web/status",
	"twimg.com/media",
	"ustream.tv",
	"ustream.tv/channel",
	"ustream.tv/user",
	"vk.com",
	"weibo.com",
	"wp.com",
	"yande.re",
	"youtube.com",
	"youtube.com/c",
	"youtube.com/channel",
	"youtube.com/user",
	"youtu.be",
}

// siteDenylistPatterns holds the denylist entries that need real regular
// expressions: CDN asset paths whose subdomain or directory is numbered.
var siteDenylistPatterns = []string{
	`cdn[ab]?\.artstation\.com/p/assets/images/images`,
	`blog-imgs-\d+(?:-origin)?\.fc2\.com`,
	`pictures\.hentai-foundry\.com(?:/\w)?`,
	`nijie\.info/nijie_picture`,
	`\d+\.media\.tumblr\.com`,
}

// siteDenylistRe is the precompiled union of every denylist rule. Compiled
// once at process start; safe for concurrent read-only use.
var siteDenylistRe = compileSiteDenylist()

func compileSiteDenylist() *regexp.Regexp {
	alternatives := make([]string, 0, len(siteDenylist)+len(siteDenylistPatterns))
	for _, domain := range siteDenylist {
		alternatives = append(alternatives, regexp.QuoteMeta(domain))
	}
	alternatives = append(alternatives, siteDenylistPatterns...)

	// A rule matches the whole truncated URL: any subdomain chain, the
	// listed domain (optionally with a path prefix), one trailing slash.
	pattern := `(?i)\Ahttps?://(?:[a-zA-Z0-9_-]+\.)*(?:` + strings.Join(alternatives, `|`) + `)/\z`
	return regexp.MustCompile(pattern)
}

// IsDenylistedSite reports whether the given URL consists of nothing but a
// generic hosting domain (plus a known generic path prefix).
func IsDenylistedSite(url string) bool {
	return siteDenylistRe.MatchString(url)
}
