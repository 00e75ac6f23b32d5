// Package filekeys provides a ready-made callback registry over file
// metadata, the registry behind pattern-based batch renaming.
package filekeys

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-keyfmt/pkg/registry"
)

// Info is the data value filekeys callbacks render from.
type Info struct {
	// Path as supplied by the caller; callbacks derive name, stem, ext and
	// dir from it.
	Path string
	// Size in bytes.
	Size int64
	// ModTime of the file. The zero value makes time-derived keys report
	// no data instead of rendering the zero time.
	ModTime time.Time
}

// Stat builds an Info for path from the filesystem.
func Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("filekeys: stat %s: %w", path, err)
	}
	return Info{Path: path, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// New returns a registry with the standard file keys:
//
//	{name}   base name including extension
//	{stem}   base name without extension; no data when empty
//	{ext}    extension without the leading dot; no data when absent
//	{dir}    parent directory as written in Path
//	{size}   size in bytes, decimal
//	{date}   modification date, 2006-01-02; no data for zero ModTime
//	{time}   modification time of day, 15.04.05; no data for zero ModTime
//	{mtime}  compact modification stamp, 20060102-150405; no data for zero ModTime
//
// Callers extend or adapt the result for keys of their own (counters,
// checksums, tags).
func New() *registry.Registry[Info] {
	return registry.New(
		registry.Pair[Info]{Key: "name", Callback: name},
		registry.Pair[Info]{Key: "stem", Callback: stem},
		registry.Pair[Info]{Key: "ext", Callback: ext},
		registry.Pair[Info]{Key: "dir", Callback: dir},
		registry.Pair[Info]{Key: "size", Callback: size},
		registry.Pair[Info]{Key: "date", Callback: modTimeKey("2006-01-02")},
		registry.Pair[Info]{Key: "time", Callback: modTimeKey("15.04.05")},
		registry.Pair[Info]{Key: "mtime", Callback: modTimeKey("20060102-150405")},
	)
}

func name(info Info) (string, bool) {
	base := filepath.Base(info.Path)
	if base == "." || base == string(filepath.Separator) {
		return "", false
	}
	return base, true
}

func stem(info Info) (string, bool) {
	base, ok := name(info)
	if !ok {
		return "", false
	}
	s := strings.TrimSuffix(base, filepath.Ext(base))
	if s == "" {
		return "", false
	}
	return s, true
}

func ext(info Info) (string, bool) {
	e := strings.TrimPrefix(filepath.Ext(info.Path), ".")
	if e == "" {
		return "", false
	}
	return e, true
}

func dir(info Info) (string, bool) {
	return filepath.Dir(info.Path), true
}

func size(info Info) (string, bool) {
	return strconv.FormatInt(info.Size, 10), true
}

func modTimeKey(layout string) registry.Callback[Info] {
	return func(info Info) (string, bool) {
		if info.ModTime.IsZero() {
			return "", false
		}
		return info.ModTime.Format(layout), true
	}
}
