package worker

import (
	"os"
	"path/filepath"

	"github.com/indigo-web/webworker/http/status"
)

// Resource is the outcome of looking a request path up on the filesystem. It's resolved
// once per request and shared by the header and the body, so both always agree.
type Resource struct {
	Status status.Code
	// Name is the filesystem path of the file. Empty unless Status is status.OK
	Name string
}

// Resolve strips exactly one leading character (the slash) off the path and looks the
// rest up relatively to root. Only regular, non-directory entries inside root are found.
func Resolve(root, path string) Resource {
	notFound := Resource{Status: status.NotFound}

	if len(path) > 0 {
		path = path[1:]
	}

	if len(path) == 0 {
		return notFound
	}

	name := filepath.Clean(filepath.FromSlash(path))
	if !filepath.IsLocal(name) {
		return notFound
	}

	name = filepath.Join(root, name)
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return notFound
	}

	return Resource{
		Status: status.OK,
		Name:   name,
	}
}
