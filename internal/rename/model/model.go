package model

// Options controls one resolution batch.
type Options struct {
	Threshold    float64 // minimum accepted score as a fraction (0..1); 0 disables
	SheetName    string  // preferred worksheet, empty = auto-detect
	ColumnHeader string  // preferred column header (partial match), empty = auto-detect
}

// MatchResult is one resolved filename stem.
// MatchedName is nil when no canonical name survived filtering and scoring,
// or when the best score fell below the threshold; Score then still carries
// the best score found (0 when structurally impossible).
type MatchResult struct {
	FileStem    string  `json:"file_stem"`
	MatchedName *string `json:"matched_name"`
	Score       float64 `json:"score"`
}

// PreviewRow is a MatchResult tied back to its archive entry.
type PreviewRow struct {
	FilePath    string  `json:"file_path"`
	FileStem    string  `json:"file_stem"`
	MatchedName *string `json:"matched_name"`
	Score       float64 `json:"score"`
	Extension   string  `json:"extension"`
}

type PreviewResult struct {
	Preview         []PreviewRow `json:"preview"`
	SheetNamesCount int          `json:"sheet_names_count"`
}

// RenameLogRow mirrors one line of the downloadable rename log.
type RenameLogRow struct {
	OldName  string  `json:"old_name"`
	NewName  string  `json:"new_name"`
	MatchPct float64 `json:"match_pct"`
}
