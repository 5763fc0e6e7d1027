// Package doctor audits the resource trees against the generated
// manifests. It reports files no manifest entry references (orphans) and
// referenced files missing from disk.
package doctor

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/bpb/resume-tailor/pkg/assetgen/logging"
)

// Options configures an audit.
type Options struct {
	// Base is the directory referenced paths are relative to.
	Base string

	// Roots are the resource directories to walk. Missing roots are
	// skipped.
	Roots []string

	// Referenced holds every slash-relative path the manifests mention.
	Referenced map[string]struct{}
}

// Report summarizes an audit.
type Report struct {
	// Orphans are files under the roots that no manifest references,
	// slash-relative to base, sorted.
	Orphans []string

	// Missing are referenced paths absent from disk, sorted.
	Missing []string

	// FilesScanned is the number of regular files examined.
	FilesScanned int64

	// OrphanBytes is the total size of orphaned files.
	OrphanBytes int64
}

// Clean reports whether the audit found nothing wrong.
func (r *Report) Clean() bool {
	return len(r.Orphans) == 0 && len(r.Missing) == 0
}

// Audit walks every existing root and compares what it finds against the
// referenced set. Unreadable entries are logged and skipped; only a walk
// setup failure is an error.
func Audit(opts Options) (*Report, error) {
	logger := logging.Get("doctor")
	report := &Report{}

	var mu sync.Mutex
	conf := fastwalk.Config{
		Follow: false, // Don't follow symlinks.
	}

	for _, root := range opts.Roots {
		rootPath := filepath.Join(opts.Base, root)
		if _, err := os.Stat(rootPath); os.IsNotExist(err) {
			logger.Info("skipping missing root", "root", root)
			continue
		}

		err := fastwalk.Walk(&conf, rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("cannot read entry", "path", path, "error", err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				logger.Warn("cannot stat file", "path", path, "error", err)
				return nil
			}

			rel, err := filepath.Rel(opts.Base, path)
			if err != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)

			mu.Lock()
			defer mu.Unlock()
			report.FilesScanned++
			if _, ok := opts.Referenced[rel]; !ok {
				report.Orphans = append(report.Orphans, rel)
				report.OrphanBytes += info.Size()
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for ref := range opts.Referenced {
		if _, err := os.Stat(filepath.Join(opts.Base, filepath.FromSlash(ref))); os.IsNotExist(err) {
			report.Missing = append(report.Missing, ref)
		}
	}

	sort.Strings(report.Orphans)
	sort.Strings(report.Missing)
	return report, nil
}
