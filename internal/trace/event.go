package trace

import (
	"maps"
	"time"
)

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // начало операции
	KindSpanEnd                   // конец операции, Detail: итог
	KindPoint                     // мгновенное событие
	KindHeartbeat                 // periodic liveness signal
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // CLI command, whole directory run
	ScopePass                    // tokenize, parse
	ScopeModule                  // one source file
	ScopeNode                    // one declaration
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeModule: "module",
	ScopeNode:   "node",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. SpanID is zero for points and heartbeats.
type Event struct {
	Time     time.Time
	Seq      uint64 // глобальный монотонный номер
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корневых спанов
	GID      uint64 // горутина, в которой открыт спан
	Name     string // "parse", "parse:scripts/main.pwn", "decl"
	Detail   string
	Extra    map[string]string
}

func (ev *Event) clone() *Event {
	cp := *ev
	cp.Extra = maps.Clone(ev.Extra)
	return &cp
}
