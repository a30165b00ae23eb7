// Package quiz defines quiz item identity. Generated items are never
// persisted, so their identifier is the only place the correct answer can
// live; curated item identifiers are opaque references into the store.
package quiz

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GeneratedIDPrefix marks identifiers of model-generated items.
const GeneratedIDPrefix = "ai-generated"

// GeneratedID identifies a model-generated quiz item. The creation timestamp
// keeps ids unique across batches, the ordinal within a batch, and the answer
// index makes the item self-describing at scoring time.
type GeneratedID struct {
	IssuedAt time.Time
	Ordinal  int
	Answer   int
}

func (g GeneratedID) String() string {
	return fmt.Sprintf("%s-%d-%d-%d", GeneratedIDPrefix, g.IssuedAt.UnixMilli(), g.Ordinal, g.Answer)
}

// ItemRef is the decoded form of a quiz item identifier: exactly one of the
// two fields is meaningful.
type ItemRef struct {
	CuratedID string
	Generated *GeneratedID
}

// Parse classifies an item identifier. Anything without the generated prefix
// is a curated reference. For generated ids the components are recovered
// best-effort: a missing or non-numeric answer component decodes to 0, never
// an error — a submission must not fail over a mangled identifier.
func Parse(id string) ItemRef {
	rest, ok := strings.CutPrefix(id, GeneratedIDPrefix+"-")
	if !ok {
		return ItemRef{CuratedID: id}
	}

	gen := &GeneratedID{}
	parts := strings.Split(rest, "-")
	if len(parts) >= 1 {
		if ms, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
			gen.IssuedAt = time.UnixMilli(ms)
		}
	}
	if len(parts) >= 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			gen.Ordinal = n
		}
	}
	if len(parts) >= 3 {
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil && n >= 0 && n <= 3 {
			gen.Answer = n
		}
	}
	return ItemRef{Generated: gen}
}
