package document

import (
	"fmt"
	"strings"
)

// Heading level of text. HeadingH3 stands for any level below second.
type Heading int

const (
	HeadingNone Heading = iota
	HeadingH1
	HeadingH2
	HeadingH3
)

// IndentLevel of nested content. IndentI3 stands for third level and deeper.
type IndentLevel int

const (
	IndentNone IndentLevel = iota
	IndentI1
	IndentI2
	IndentI3
)

type ListingKind int

const (
	ListingNone ListingKind = iota
	ListingUnordered
	ListingOrdered
)

type AlignHorizontal int

const (
	AlignAuto AlignHorizontal = iota
	AlignLeft
	AlignRight
	AlignCenter
)

type SeparatorDir int

const (
	SeparatorHorizontal SeparatorDir = iota
	SeparatorVertical
)

var (
	headingNames     = []string{"none", "h1", "h2", "h3"}
	indentNames      = []string{"none", "i1", "i2", "i3"}
	listingKindNames = []string{"none", "unordered", "ordered"}
	alignNames       = []string{"auto", "left", "right", "center"}
	separatorNames   = []string{"horizontal", "vertical"}
)

func enumString(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func enumParse(what string, names []string, text []byte) (int, error) {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid %s, try [%s]", string(text), what, strings.Join(names, ", "))
}

// Int returns numeric level: 0 for none, 1, 2, 3 for deeper levels.
func (l IndentLevel) Int() int {
	return int(l)
}

func (h Heading) String() string         { return enumString(headingNames, int(h)) }
func (l IndentLevel) String() string     { return enumString(indentNames, int(l)) }
func (k ListingKind) String() string     { return enumString(listingKindNames, int(k)) }
func (a AlignHorizontal) String() string { return enumString(alignNames, int(a)) }
func (d SeparatorDir) String() string    { return enumString(separatorNames, int(d)) }

func (h Heading) MarshalText() ([]byte, error)         { return []byte(h.String()), nil }
func (l IndentLevel) MarshalText() ([]byte, error)     { return []byte(l.String()), nil }
func (k ListingKind) MarshalText() ([]byte, error)     { return []byte(k.String()), nil }
func (a AlignHorizontal) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (d SeparatorDir) MarshalText() ([]byte, error)    { return []byte(d.String()), nil }

func (h *Heading) UnmarshalText(text []byte) error {
	v, err := enumParse("heading", headingNames, text)
	*h = Heading(v)
	return err
}

func (l *IndentLevel) UnmarshalText(text []byte) error {
	v, err := enumParse("indent level", indentNames, text)
	*l = IndentLevel(v)
	return err
}

func (k *ListingKind) UnmarshalText(text []byte) error {
	v, err := enumParse("listing kind", listingKindNames, text)
	*k = ListingKind(v)
	return err
}

func (a *AlignHorizontal) UnmarshalText(text []byte) error {
	v, err := enumParse("alignment", alignNames, text)
	*a = AlignHorizontal(v)
	return err
}

func (d *SeparatorDir) UnmarshalText(text []byte) error {
	v, err := enumParse("separator direction", separatorNames, text)
	*d = SeparatorDir(v)
	return err
}
