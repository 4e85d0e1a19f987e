package service

// Engine holds the configurable data of the resolver: the stoplist of
// low-information words excluded from primary-token selection and the
// closed region table. Adding a market is a data change, not a code change.
// The zero value is unusable; use NewEngine or Default.
type Engine struct {
	stoplist map[string]struct{}
	regions  []Region
}

// Words that carry no creative identity in CM360-style names: formats,
// channels, language codes and short operational noise. Anything shorter
// than 5 chars is excluded from primary selection anyway; short codes are
// still listed so the table documents itself.
var defaultStoplist = []string{
	"display", "online", "banner", "static", "statics", "html5", "video",
	"social", "digital", "animated", "creative",
	"ads", "iab", "web", "gif", "jpg", "png",
	"fr", "nl", "vl", "be", "befr", "benl", "bevl", "na",
}

// Belgian market split. BENL has two accepted spellings in the wild.
var defaultRegions = []Region{
	{Code: "befr", Variants: []string{"befr"}, Hints: []string{"fr"}},
	{Code: "benl", Variants: []string{"benl", "bevl"}, Hints: []string{"nl", "vl"}},
}

func NewEngine(stoplist []string, regions []Region) *Engine {
	set := make(map[string]struct{}, len(stoplist))
	for _, w := range stoplist {
		set[Normalize(w)] = struct{}{}
	}
	return &Engine{stoplist: set, regions: regions}
}

// Default returns an engine with the stock stoplist and region table.
func Default() *Engine {
	return NewEngine(defaultStoplist, defaultRegions)
}

// Extract derives all anchors of one raw name. Each extractor is
// independent; a signal that cannot be derived is simply absent.
func (e *Engine) Extract(s string) Anchors {
	return Anchors{
		Size:     SizeToken(s),
		IDTokens: IDTokens(s),
		Primary:  PrimaryToken(s, e.stoplist),
		Region:   DetectRegion(s, e.regions),
	}
}

func (e *Engine) region(code string) *Region {
	for i := range e.regions {
		if e.regions[i].Code == code {
			return &e.regions[i]
		}
	}
	return nil
}
