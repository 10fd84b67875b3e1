package diag

import (
	"cmp"
	"math"
	"slices"

	"pawnc/internal/source"
)

// Bag collects diagnostics up to a fixed limit. It is not goroutine-safe;
// wrap it in a LockedReporter when several workers report into it.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics; max <= 0 falls back to the uint16 limit.
func NewBag(max int) *Bag {
	if max <= 0 || max > math.MaxUint16 {
		max = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   uint16(max), // #nosec G115 -- clamped above
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 { return b.max }

func (b *Bag) Len() int { return len(b.items) }

// HasErrors: есть ли хотя бы одна ошибка. Именно он определяет код выхода CLI.
func (b *Bag) HasErrors() bool { return b.hasAtLeast(SevError) }

func (b *Bag) HasWarnings() bool { return b.hasAtLeast(SevWarning) }

func (b *Bag) hasAtLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

// Items возвращает внутренний срез без копии; не модифицируйте его.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders by file, start, end, severity (errors first) and code,
// so output does not depend on worker scheduling.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		px, py := x.Primary, y.Primary
		return cmp.Or(
			cmp.Compare(px.File, py.File),
			compareLineCol(px.Start(), py.Start()),
			compareLineCol(px.End(), py.End()),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

func compareLineCol(a, b source.LineCol) int {
	return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Col, b.Col))
}

// Dedup drops repeated diagnostics with the same code, severity and primary span, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		sev  Severity
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{code: d.Code, sev: d.Severity, span: d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
