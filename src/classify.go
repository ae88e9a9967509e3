package ft8token

import (
	"strings"
)

// Kind is the set of categories a token falls into.
// These overlap, e.g. "RR73" is both a roger and a 73, and "R-05" is a roger and a report.
type Kind uint8

const KindNone Kind = 0

const (
	KindRoger Kind = 1 << iota
	KindReport
	KindSeventyThree
	KindGrid
	KindCall
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{KindRoger, "roger"},
	{KindReport, "report"},
	{KindSeventyThree, "73"},
	{KindGrid, "grid"},
	{KindCall, "call"},
}

// Classify applies every predicate to the token and collects the ones that accept it.
func Classify(token string) Kind {
	var k = KindNone

	if IsRoger(token) {
		k |= KindRoger
	}
	if IsReport(token) {
		k |= KindReport
	}
	if Is73(token) {
		k |= KindSeventyThree
	}
	if IsGrid(token) {
		k |= KindGrid
	}
	if IsCall(token) {
		k |= KindCall
	}

	return k
}

func (k Kind) Has(f Kind) bool {
	return f != KindNone && k&f == f
}

// Names lists the categories in a fixed order.  Empty for KindNone.
func (k Kind) Names() []string {
	var names []string

	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			names = append(names, kn.name)
		}
	}

	return names
}

func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}

	return strings.Join(k.Names(), "|")
}

// MarshalYAML writes the kind as a list of names rather than a number.
func (k Kind) MarshalYAML() (any, error) {
	var names = k.Names()
	if names == nil {
		names = []string{}
	}

	return names, nil
}
