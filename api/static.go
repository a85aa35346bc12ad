package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// SPAHandler serves files from Dir and falls back to Dir/index.html for any
// path that is not a regular file, so client-side routes resolve to the app.
type SPAHandler struct {
	Dir string
}

func (h SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := filepath.Join(h.Dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
		http.ServeFile(w, r, p)
		return
	}

	index := filepath.Join(h.Dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
