package recording

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/olive"
	"github.com/gogpu/olive/internal/cache"
)

// fileCacheSize bounds the number of decoded sprite files kept between
// playbacks.
const fileCacheSize = 64

// fileKey identifies one version of a file on disk. A rewritten file gets a
// new key, so stale decodes are never served.
type fileKey struct {
	path    string
	size    int64
	modTime time.Time
}

var fileCache = cache.New[fileKey, *olive.Canvas](fileCacheSize)

// loadCached decodes the image at path, reusing an earlier decode of the
// same file version. Cached canvases are only ever read by playback.
func loadCached(path string) (*olive.Canvas, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	key := fileKey{path: abs, size: info.Size(), modTime: info.ModTime()}
	return fileCache.GetOrLoad(key, func() (*olive.Canvas, error) {
		return olive.Load(abs)
	})
}
