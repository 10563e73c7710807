package urlstrip

import "github.com/okpulse/url-strip/result"

func okResult(u URL) StripResult {
	return result.Ok[URL, Error](u)
}

func errResult(msg string) StripResult {
	return result.Err[URL](NewError(msg))
}

// StripQuery is the fallback rule for hosts without a registered strip
// function. It removes every query key on the tracking deny-list,
// preserving the relative order of the remaining pairs. It has no
// failure condition and always returns Ok.
func StripQuery(u URL) StripResult {
	var kept []Param
	for _, p := range u.Query {
		if _, tracked := trackingParams[p.Key]; !tracked {
			kept = append(kept, p)
		}
	}
	u.Query = kept
	return okResult(u)
}

// Strip parses raw and applies the strip rule registered for its host,
// or StripQuery when no rule matches. Parse failures surface as Err;
// Strip never panics on input data.
func Strip(raw string) StripResult {
	u, err := Parse(raw)
	if err != nil {
		return errResult(err.Error())
	}
	if fn, ok := Lookup(u.Host); ok {
		return fn(u)
	}
	return StripQuery(u)
}
