package generator

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/tools/imports"

	"omibyte.io/ctucanfd/regmap"
)

type Generator interface {
	Generate(w io.Writer) error
}

type Options struct {
	Package string
	// Source names the description the map was built from, for the file header.
	Source string
}

type gogen struct {
	m    *regmap.Map
	opts Options
}

// NewGoGenerator returns a generator rendering the map as a Go package with a
// typed offset per register, a uint32 type with shift/mask accessors per word,
// a type per enum and the map itself as data.
func NewGoGenerator(m *regmap.Map, opts Options) Generator {
	if opts.Package == "" {
		opts.Package = "regs"
	}
	return &gogen{m: m, opts: opts}
}

func (g *gogen) Generate(w io.Writer) error {
	if err := checkIdentifiers(g.m); err != nil {
		return err
	}

	var buf strings.Builder

	g.writePreamble(&buf)
	g.writeOffsets(&buf)
	for i := range g.m.Words {
		g.writeWord(&buf, &g.m.Words[i])
	}
	for i := range g.m.Enums {
		g.writeEnum(&buf, &g.m.Enums[i])
	}
	g.writeMap(&buf)

	// Format the final output
	fname := g.opts.Package + ".go"
	src, err := imports.Process(fname, []byte(buf.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", fname, err)
	}

	_, err = w.Write(src)
	return err
}

func (g *gogen) writePreamble(w io.Writer) {
	fmt.Fprintln(w, "// Code generated by regmap generate. DO NOT EDIT.")
	if g.opts.Source != "" {
		fmt.Fprintf(w, "// Source: %s\n", g.opts.Source)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "package %s\n\n", g.opts.Package)
	fmt.Fprintln(w, `import "omibyte.io/ctucanfd/regmap"`)
	fmt.Fprintln(w)
}

func (g *gogen) writeOffsets(w io.Writer) {
	fmt.Fprintf(w, "// Register is the byte offset of a register in the %s block.\n", g.m.Name)
	fmt.Fprintln(w, "type Register uint32")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "const (")
	for _, r := range g.m.Registers {
		fmt.Fprintf(w, "%s Register = %#x\n", r.Name, r.Offset)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)
}

func (g *gogen) writeWord(w io.Writer, word *regmap.Word) {
	typename := word.Name + "_REG"

	if len(word.Registers) == 1 {
		fmt.Fprintf(w, "// %s is the word of register %s.\n", typename, word.Registers[0])
	} else {
		fmt.Fprintf(w, "// %s packs registers %s into one word.\n", typename, strings.Join(word.Registers, ", "))
	}
	fmt.Fprintf(w, "type %s uint32\n\n", typename)
	fmt.Fprintf(w, "func (%s) Offset() Register { return %s }\n\n", typename, word.Registers[0])

	for _, f := range word.Fields {
		if f.Reserved {
			continue
		}
		mask := fmt.Sprintf("%#x", f.Max())

		// Getter
		switch {
		case f.Enum != "":
			fmt.Fprintf(w, "func (r %s) Get%s() %s {\n", typename, f.Name, f.Enum)
			fmt.Fprintf(w, "return %s((r >> %d) & %s)\n", f.Enum, f.Shift, mask)
		case f.Width == 1:
			fmt.Fprintf(w, "func (r %s) Get%s() bool {\n", typename, f.Name)
			fmt.Fprintf(w, "return r&(1<<%d) != 0\n", f.Shift)
		default:
			fmt.Fprintf(w, "func (r %s) Get%s() %s {\n", typename, f.Name, typeForBitWidth(f.Width))
			fmt.Fprintf(w, "return %s((r >> %d) & %s)\n", typeForBitWidth(f.Width), f.Shift, mask)
		}
		fmt.Fprint(w, "}\n\n")

		// Setter
		switch {
		case f.Enum != "":
			fmt.Fprintf(w, "func (r *%s) Set%s(value %s) {\n", typename, f.Name, f.Enum)
			fmt.Fprintf(w, "*r = (*r &^ (%s << %d)) | %s(value&%s)<<%d\n", mask, f.Shift, typename, mask, f.Shift)
		case f.Width == 1:
			fmt.Fprintf(w, "func (r *%s) Set%s(value bool) {\n", typename, f.Name)
			fmt.Fprintln(w, "if value {")
			fmt.Fprintf(w, "*r |= 1 << %d\n", f.Shift)
			fmt.Fprintln(w, "} else {")
			fmt.Fprintf(w, "*r &^= 1 << %d\n", f.Shift)
			fmt.Fprintln(w, "}")
		default:
			fmt.Fprintf(w, "func (r *%s) Set%s(value %s) {\n", typename, f.Name, typeForBitWidth(f.Width))
			fmt.Fprintf(w, "*r = (*r &^ (%s << %d)) | %s(value&%s)<<%d\n", mask, f.Shift, typename, mask, f.Shift)
		}
		fmt.Fprint(w, "}\n\n")
	}
}

func (g *gogen) writeEnum(w io.Writer, e *regmap.Enum) {
	var users []string
	for _, word := range g.m.Words {
		for _, f := range word.Fields {
			if f.Enum == e.Name {
				users = append(users, f.Register+"."+f.Name)
			}
		}
	}

	fmt.Fprintf(w, "// %s enumerates the codes of %s.\n", e.Name, strings.Join(users, ", "))
	fmt.Fprintf(w, "type %s uint32\n\n", e.Name)
	fmt.Fprintln(w, "const (")
	for _, v := range e.Values {
		fmt.Fprintf(w, "%s %s = %#x\n", v.Name, e.Name, v.Value)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)
}

func (g *gogen) writeMap(w io.Writer) {
	fmt.Fprintf(w, "// Map describes the %s block as data.\n", g.m.Name)
	fmt.Fprintln(w, "var Map = regmap.Map{")
	fmt.Fprintf(w, "Name: %q,\n", g.m.Name)

	fmt.Fprintln(w, "Registers: []regmap.Register{")
	for _, r := range g.m.Registers {
		fmt.Fprintf(w, "{Name: %q, Offset: %#x, Size: %d", r.Name, r.Offset, r.Size)
		if r.Access != "" {
			fmt.Fprintf(w, ", Access: %s", accessIdent(r.Access))
		}
		if r.ReadEffect {
			fmt.Fprint(w, ", ReadEffect: true")
		}
		if r.Description != "" {
			fmt.Fprintf(w, ", Description: %q", r.Description)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "},")

	fmt.Fprintln(w, "Words: []regmap.Word{")
	for _, word := range g.m.Words {
		fmt.Fprintln(w, "{")
		fmt.Fprintf(w, "Name: %q,\n", word.Name)
		fmt.Fprintf(w, "Offset: %#x,\n", word.Offset)
		fmt.Fprintf(w, "Registers: []string{%s},\n", quoteAll(word.Registers))
		fmt.Fprintln(w, "Fields: []regmap.Field{")
		for _, f := range word.Fields {
			fmt.Fprintf(w, "{Name: %q", f.Name)
			if f.Register != "" {
				fmt.Fprintf(w, ", Register: %q", f.Register)
			}
			fmt.Fprintf(w, ", Shift: %d, Width: %d", f.Shift, f.Width)
			if f.Access != "" {
				fmt.Fprintf(w, ", Access: %s", accessIdent(f.Access))
			}
			if f.Enum != "" {
				fmt.Fprintf(w, ", Enum: %q", f.Enum)
			}
			if f.Reserved {
				fmt.Fprint(w, ", Reserved: true")
			}
			fmt.Fprintln(w, "},")
		}
		fmt.Fprintln(w, "},")
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "},")

	fmt.Fprintln(w, "Enums: []regmap.Enum{")
	for _, e := range g.m.Enums {
		fmt.Fprintf(w, "{Name: %q, Values: []regmap.Value{\n", e.Name)
		for _, v := range e.Values {
			fmt.Fprintf(w, "{Name: %q, Value: %#x},\n", v.Name, v.Value)
		}
		fmt.Fprintln(w, "}},")
	}
	fmt.Fprintln(w, "},")
	fmt.Fprintln(w, "}")
}

func typeForBitWidth(width uint8) string {
	if width > 16 {
		return "uint32"
	} else if width > 8 {
		return "uint16"
	} else if width > 1 {
		return "uint8"
	} else {
		return "bool"
	}
}

func accessIdent(a regmap.Access) string {
	switch a {
	case regmap.ReadOnly:
		return "regmap.ReadOnly"
	case regmap.WriteOnly:
		return "regmap.WriteOnly"
	default:
		return "regmap.ReadWrite"
	}
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return strings.Join(quoted, ", ")
}
