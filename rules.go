package urlstrip

import (
	"slices"
	"strconv"
	"strings"
)

// Built-in rules, bound at process start. Several hostnames may share
// one function; callers can overwrite any entry via Register.
func init() {
	for _, d := range []string{"youtube.com", "www.youtube.com"} {
		Register(d)(youtubeStrip)
	}
	for _, d := range []string{"www.amazon.com", "www.amazon.co.uk"} {
		Register(d)(amazonStrip)
	}
	for _, d := range []string{"ebay.com", "www.ebay.com", "www.ebay.co.uk", "www.ebay.de", "www.ebay.com.au"} {
		Register(d)(ebayStrip)
	}
	Register("www.reddit.com")(redditStrip)
	for _, d := range []string{"www.tiktok.com", "vm.tiktok.com"} {
		Register(d)(tiktokStrip)
	}
	Register("twitter.com")(twitterStrip)
}

func dropQuery(u URL) URL {
	u.Query = nil
	return u
}

// youtubeStrip rewrites watch URLs into the youtu.be short form,
// discarding the query entirely. Watch links without a video id are
// malformed for this site.
func youtubeStrip(u URL) StripResult {
	if u.Path == "/watch" {
		id, ok := u.QueryValue("v")
		if !ok || id == "" {
			return errResult("youtube watch link has no video id")
		}
		return okResult(URL{Scheme: "https", Host: "youtu.be", Path: "/" + id, Fragment: u.Fragment})
	}
	return okResult(dropQuery(u))
}

// amazonStrip reduces product pages to the /dp/<id> form. Everything
// after the product id is referral noise.
func amazonStrip(u URL) StripResult {
	segs := strings.Split(u.Path, "/")
	if i := slices.Index(segs, "dp"); i != -1 && i+1 < len(segs) && segs[i+1] != "" {
		return okResult(URL{Scheme: u.Scheme, Host: u.Host, Path: "/dp/" + segs[i+1], Fragment: u.Fragment})
	}
	return okResult(dropQuery(u))
}

// ebayStrip reduces listings to /itm/<id>. The listing title that ebay
// inserts before the numeric id is cosmetic.
func ebayStrip(u URL) StripResult {
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) >= 2 && segs[0] == "itm" {
		id := segs[len(segs)-1]
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			return errResult("ebay item link has no numeric item id")
		}
		return okResult(URL{Scheme: u.Scheme, Host: u.Host, Path: "/itm/" + id, Fragment: u.Fragment})
	}
	return okResult(dropQuery(u))
}

// redditStrip drops share tracking and the trailing slash reddit appends
// to post permalinks.
func redditStrip(u URL) StripResult {
	u = dropQuery(u)
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return okResult(u)
}

func tiktokStrip(u URL) StripResult {
	return okResult(dropQuery(u))
}

func twitterStrip(u URL) StripResult {
	return okResult(dropQuery(u))
}
