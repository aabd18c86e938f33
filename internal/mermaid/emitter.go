// Package mermaid serializes an extracted entity/relationship model into
// Mermaid class-diagram description text.
package mermaid

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/graph"
)

// Header is the fixed diagram-kind line every emitted description starts
// with.
const Header = "classDiagram"

// edge notations, fixed by the Mermaid class-diagram grammar.
const (
	compositionArrow  = "<|--"
	satisfactionArrow = "<|.."
)

// Emit renders the model as Mermaid class-diagram text: one class block per
// entity in first-seen order, then one relationship line per relation in
// insertion order. Output is deterministic for a given model.
func Emit(model *graph.Model) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	for _, entity := range model.Entities() {
		emitEntity(&b, entity)
	}

	for _, rel := range model.Relations() {
		emitRelation(&b, rel)
	}

	return b.String()
}

func emitEntity(b *strings.Builder, entity *graph.Entity) {
	fmt.Fprintf(b, "class %s {\n", entity.Name)
	if entity.Kind == graph.KindContract {
		b.WriteString("  <<interface>>\n")
	}
	for _, field := range entity.Fields {
		fmt.Fprintf(b, "  %s%s: %s\n", visibility(field.Name), field.Name, field.Type)
	}
	for _, method := range entity.Methods {
		line := fmt.Sprintf("%s%s(%s) %s", visibility(method.Name), method.Name, method.Params, method.Returns)
		fmt.Fprintf(b, "  %s\n", strings.TrimRight(line, " "))
	}
	b.WriteString("}\n")
}

func emitRelation(b *strings.Builder, rel graph.Relation) {
	arrow := compositionArrow
	if rel.Kind == graph.RelSatisfaction {
		arrow = satisfactionArrow
	}
	fmt.Fprintf(b, "%s %s %s\n", rel.From, arrow, rel.To)
}

// visibility maps Go's exported-identifier convention onto diagram
// visibility markers: "+" when the member name starts with an upper-case
// letter, "-" otherwise. Evaluated on the name alone, case-sensitively.
func visibility(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return "+"
	}
	return "-"
}
