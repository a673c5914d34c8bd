package ddl

// NameType distinguishes global from local names.
type NameType int

const (
	GlobalName NameType = iota // written with a $ sigil
	LocalName                  // written with a % sigil
)

func (nt NameType) String() string {
	if nt == LocalName {
		return "local"
	}
	return "global"
}

// Sigil returns the character that introduces a name of this kind.
func (nt NameType) Sigil() byte {
	if nt == LocalName {
		return '%'
	}
	return '$'
}

// Name is a tagged identifier: the sigil selects the kind, the identifier
// text is stored without it.
type Name struct {
	Kind NameType
	ID   string
}

// Reference records the target list of a ref{...} value. Targets are kept
// as written; resolution is left to the caller.
type Reference struct {
	Names []*Name
}
