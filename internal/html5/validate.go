package html5

import (
	"archive/zip"
	"io"
	"math"
	"strings"
)

// IAB guideline for the initial load of an HTML5 display creative.
const MaxInitialLoadKB = 200

// Entry points CM360 accepts for an HTML5 creative bundle.
var entryPoints = []string{"index.html", "index.htm"}

// initial-load estimate: the entry file plus the first assets the browser
// would pull; exact dependency graphs are out of scope
const initialLoadProbeFiles = 20

type Report struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	FileCount     int      `json:"file_count"`
	IndexPath     string   `json:"index_path,omitempty"`
	InitialLoadKB float64  `json:"initial_load_kb"`
}

// Validate checks the structure of an HTML5 creative ZIP: entry point
// presence and a rough initial-load estimate against the IAB guideline.
func Validate(z *zip.Reader) Report {
	rep := Report{Errors: []string{}, Warnings: []string{}}

	var files []*zip.File
	for _, f := range z.File {
		if !strings.HasSuffix(f.Name, "/") {
			files = append(files, f)
		}
	}
	rep.FileCount = len(files)

	for _, ep := range entryPoints {
		for _, f := range files {
			if strings.HasSuffix(strings.ToLower(f.Name), ep) {
				rep.IndexPath = f.Name
				break
			}
		}
		if rep.IndexPath != "" {
			break
		}
	}
	if rep.IndexPath == "" {
		rep.Errors = append(rep.Errors, "Missing index.html or index.htm")
	}

	var total int64
	for i, f := range files {
		if i >= initialLoadProbeFiles {
			break
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		if n, err := io.Copy(io.Discard, rc); err == nil {
			total += n
		}
		rc.Close()
	}
	rep.InitialLoadKB = math.Round(float64(total)/1024*10) / 10
	if rep.InitialLoadKB > MaxInitialLoadKB {
		rep.Warnings = append(rep.Warnings,
			"Initial load exceeds IAB guideline (~200 KB)")
	}

	rep.Valid = len(rep.Errors) == 0
	return rep
}
