// Package match classifies participant input against the canonical command
// strings using an explicit edit-distance similarity. Exact equality is too
// strict for hand-typed commands, in particular for the Gaelic command set
// where accents are frequently dropped or transliterated.
package match

// Command identifies one of the canonical protocol commands.
type Command int

const (
	// CommandUnknown means no canonical command reached the threshold.
	CommandUnknown Command = iota
	CommandDone
	CommandNext
	CommandReady
)

// String returns the command name for logging.
func (c Command) String() string {
	switch c {
	case CommandDone:
		return "done"
	case CommandNext:
		return "next"
	case CommandReady:
		return "ready"
	}
	return "unknown"
}

// Classifier matches free text against the canonical command strings of one
// language. Matching precedence is fixed: done, then next, then ready.
// A candidate is accepted when its partial ratio is at least the threshold.
type Classifier struct {
	done      string
	next      string
	ready     string
	threshold int
}

// NewClassifier builds a classifier for the given canonical commands.
// The threshold is a similarity score out of 100.
func NewClassifier(done, next, ready string, threshold int) *Classifier {
	return &Classifier{done: done, next: next, ready: ready, threshold: threshold}
}

// Classify returns the best-matching command for the input, honouring the
// done/next/ready precedence on ties or overlapping matches.
func (c *Classifier) Classify(input string) Command {
	switch {
	case PartialRatio(input, c.done) >= c.threshold:
		return CommandDone
	case PartialRatio(input, c.next) >= c.threshold:
		return CommandNext
	case PartialRatio(input, c.ready) >= c.threshold:
		return CommandReady
	}
	return CommandUnknown
}

// PartialRatio computes a similarity score between 0 and 100 for the two
// strings. The shorter string is compared against every equally long rune
// window of the longer one; the score of a window is
// 100*(n-distance)/n for window length n, and the best window wins. This
// tolerates both typos (edit distance) and embedding a command in longer
// text (the sliding window).
func PartialRatio(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	n := len(ra)
	if n == 0 {
		if len(rb) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for start := 0; start+n <= len(rb); start++ {
		dist := levenshtein(ra, rb[start:start+n])
		score := (n - dist) * 100 / n
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// levenshtein computes the edit distance between two rune slices using a
// single row of the distance matrix.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost
			current[i] = min(deletion, min(insertion, substitution))
		}
		previous = current
	}
	return previous[len(a)]
}
