package url

import (
	"net/url"
)

type MutationFunc func(u *url.URL)

// Mutate returns a copy of the given URL with the mutations applied.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copied := *u
	for _, fn := range funcs {
		fn(&copied)
	}

	return &copied
}

func WithPath(path string) MutationFunc {
	return func(u *url.URL) {
		u.Path = path
		u.RawQuery = ""
	}
}

func WithValues(values url.Values) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for key, vv := range values {
			query.Del(key)
			for _, v := range vv {
				query.Add(key, v)
			}
		}

		u.RawQuery = query.Encode()
	}
}
