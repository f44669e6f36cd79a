package middleware

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Static serves files from dir ahead of route dispatch. A GET or HEAD
// request whose path resolves to a regular file is answered with the
// file bytes and an inferred content type; everything else falls
// through to the next handler. Directories serve their index.html when
// one exists.
func Static(dir string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			// Cleaning a rooted path strips any ".." segments, so the
			// join below cannot escape dir.
			clean := path.Clean("/" + r.URL.Path)
			name := filepath.Join(dir, filepath.FromSlash(clean))

			info, err := os.Stat(name)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if info.IsDir() {
				name = filepath.Join(name, "index.html")
				info, err = os.Stat(name)
				if err != nil || info.IsDir() {
					next.ServeHTTP(w, r)
					return
				}
			}

			f, err := os.Open(name)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			defer f.Close()

			http.ServeContent(w, r, filepath.Base(name), info.ModTime(), f)
		})
	}
}
