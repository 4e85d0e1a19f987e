package archive

import (
	"archive/zip"
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"renamer-service/internal/rename/model"
)

// Entry is one file inside an uploaded creatives ZIP.
type Entry struct {
	Path string // full path inside the archive
	Stem string // basename without the final extension
	Ext  string // final extension including the dot, "" if none
}

// Entries lists the file entries of a ZIP, directories skipped, archive order.
func Entries(z *zip.Reader) []Entry {
	out := make([]Entry, 0, len(z.File))
	for _, f := range z.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		out = append(out, Entry{Path: f.Name, Stem: Stem(f.Name), Ext: Ext(f.Name)})
	}
	return out
}

// Stem strips the directory and the final extension of an archive path.
func Stem(p string) string {
	name := path.Base(p)
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// Ext returns the final extension of an archive path, dot included.
func Ext(p string) string {
	name := path.Base(p)
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

// BuildRenamed writes a new deflated ZIP with every entry renamed to its
// matched canonical name (unmatched entries keep their stem). Duplicate
// target names get a _1, _2... suffix before the extension; downstream
// resolution is allowed to map two files onto the same canonical name.
func BuildRenamed(src *zip.Reader, entries []Entry, matches []model.MatchResult) ([]byte, []model.RenameLogRow, error) {
	if len(entries) != len(matches) {
		return nil, nil, fmt.Errorf("archive: %d entries but %d matches", len(entries), len(matches))
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	used := make(map[string]struct{}, len(entries))
	logRows := make([]model.RenameLogRow, 0, len(entries))

	for i, e := range entries {
		base := e.Stem
		if matches[i].MatchedName != nil {
			base = *matches[i].MatchedName
		}
		newName := base + e.Ext
		for c := 1; ; c++ {
			if _, taken := used[newName]; !taken {
				break
			}
			newName = fmt.Sprintf("%s_%d%s", base, c, e.Ext)
		}
		used[newName] = struct{}{}

		rc, err := openEntry(src, e.Path)
		if err != nil {
			continue // unreadable entry: skip, same as the preview showed it
		}
		w, err := zw.Create(newName)
		if err == nil {
			_, err = io.Copy(w, rc)
		}
		rc.Close()
		if err != nil {
			zw.Close()
			return nil, nil, err
		}
		logRows = append(logRows, model.RenameLogRow{
			OldName:  e.Path,
			NewName:  newName,
			MatchPct: matches[i].Score,
		})
	}
	if err := zw.Close(); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), logRows, nil
}

func openEntry(z *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range z.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("archive: no entry %q", name)
}

// CompareResult is the content diff of two archives, keyed by basename.
type CompareResult struct {
	OnlyIn1          []string       `json:"only_in_1"`
	OnlyIn2          []string       `json:"only_in_2"`
	SameContent      []string       `json:"same_content"`
	DifferentContent []string       `json:"different_content"`
	Summary          CompareSummary `json:"summary"`
}

type CompareSummary struct {
	OnlyIn1Count          int `json:"only_in_1_count"`
	OnlyIn2Count          int `json:"only_in_2_count"`
	SameContentCount      int `json:"same_content_count"`
	DifferentContentCount int `json:"different_content_count"`
}

// Compare diffs two ZIPs by basename and content hash. Output lists are
// sorted for stable responses.
func Compare(z1, z2 *zip.Reader) CompareResult {
	m1 := hashByBasename(z1)
	m2 := hashByBasename(z2)

	res := CompareResult{
		OnlyIn1:          []string{},
		OnlyIn2:          []string{},
		SameContent:      []string{},
		DifferentContent: []string{},
	}
	for n := range m1 {
		if _, ok := m2[n]; !ok {
			res.OnlyIn1 = append(res.OnlyIn1, n)
		}
	}
	for n := range m2 {
		if _, ok := m1[n]; !ok {
			res.OnlyIn2 = append(res.OnlyIn2, n)
		}
	}
	for n, h1 := range m1 {
		if h2, ok := m2[n]; ok {
			if h1 == h2 {
				res.SameContent = append(res.SameContent, n)
			} else {
				res.DifferentContent = append(res.DifferentContent, n)
			}
		}
	}
	sort.Strings(res.OnlyIn1)
	sort.Strings(res.OnlyIn2)
	sort.Strings(res.SameContent)
	sort.Strings(res.DifferentContent)
	res.Summary = CompareSummary{
		OnlyIn1Count:          len(res.OnlyIn1),
		OnlyIn2Count:          len(res.OnlyIn2),
		SameContentCount:      len(res.SameContent),
		DifferentContentCount: len(res.DifferentContent),
	}
	return res
}

func hashByBasename(z *zip.Reader) map[string]string {
	out := make(map[string]string)
	for _, f := range z.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		h := md5.New()
		_, err = io.Copy(h, rc)
		rc.Close()
		if err != nil {
			continue
		}
		out[path.Base(f.Name)] = hex.EncodeToString(h.Sum(nil))
	}
	return out
}
