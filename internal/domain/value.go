package domain

// ValueKind identifies the variant carried by a ContractValue
type ValueKind string

const (
	KindVoid    ValueKind = "VOID"
	KindBool    ValueKind = "BOOL"
	KindU32     ValueKind = "U32"
	KindU64     ValueKind = "U64"
	KindI128    ValueKind = "I128"
	KindSymbol  ValueKind = "SYMBOL"
	KindAddress ValueKind = "ADDRESS"
	KindBytes   ValueKind = "BYTES"
	KindVec     ValueKind = "VEC"
	KindMap     ValueKind = "MAP"
)

// Int128Parts holds a 128-bit integer split into a signed high half and an
// unsigned low half, exactly as the contract runtime returns it.
type Int128Parts struct {
	Hi int64
	Lo uint64
}

// MapEntry is a single ordered key/value pair inside a MAP value
type MapEntry struct {
	Key ContractValue
	Val ContractValue
}

// ContractValue is one node of a decoded contract response tree.
// It is a tagged union: Kind selects which payload field is meaningful.
// Trees are built once per contract read by the upstream codec layer and
// never mutated afterwards, so they are safe to share across goroutines.
type ContractValue struct {
	Kind ValueKind

	Bool    bool
	U32     uint32
	U64     uint64
	I128    Int128Parts
	Str     string // SYMBOL and ADDRESS payloads
	Bytes   []byte
	Vec     []ContractValue
	Entries []MapEntry
}

// Constructors used by the decoder tests and the JSON envelope parser.

func VoidVal() ContractValue            { return ContractValue{Kind: KindVoid} }
func BoolVal(b bool) ContractValue      { return ContractValue{Kind: KindBool, Bool: b} }
func U32Val(v uint32) ContractValue     { return ContractValue{Kind: KindU32, U32: v} }
func U64Val(v uint64) ContractValue     { return ContractValue{Kind: KindU64, U64: v} }
func SymbolVal(s string) ContractValue  { return ContractValue{Kind: KindSymbol, Str: s} }
func AddressVal(a string) ContractValue { return ContractValue{Kind: KindAddress, Str: a} }
func BytesVal(b []byte) ContractValue   { return ContractValue{Kind: KindBytes, Bytes: b} }

func I128Val(hi int64, lo uint64) ContractValue {
	return ContractValue{Kind: KindI128, I128: Int128Parts{Hi: hi, Lo: lo}}
}

func VecVal(items ...ContractValue) ContractValue {
	return ContractValue{Kind: KindVec, Vec: items}
}

func MapVal(entries ...MapEntry) ContractValue {
	return ContractValue{Kind: KindMap, Entries: entries}
}

// IsMap reports whether the value is a MAP variant
func (v ContractValue) IsMap() bool {
	return v.Kind == KindMap
}

// Lookup finds the value stored under a SYMBOL key in a MAP value.
// Entries whose key is not a SYMBOL are skipped: the reserve schema only
// ever uses symbol keys, and foreign key shapes are a forward-compatibility
// concern, not an error. Returns false if the value is not a map or the
// symbol is absent.
func (v ContractValue) Lookup(symbol string) (ContractValue, bool) {
	if v.Kind != KindMap {
		return ContractValue{}, false
	}
	for _, entry := range v.Entries {
		if entry.Key.Kind != KindSymbol {
			continue
		}
		if entry.Key.Str == symbol {
			return entry.Val, true
		}
	}
	return ContractValue{}, false
}
