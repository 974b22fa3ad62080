package generators

import (
	"math/rand"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

func (s *ByteSource) Float64() float64 {
	if s.pos >= len(s.data) {
		return 0.0
	}
	v := int(s.data[s.pos])
	s.pos++
	return float64(v) / 255.0
}

// Generator generates random numlang programs. Every generated line is
// syntactically valid and only references variables declared on earlier
// lines with a matching kind, so the only runtime failure a program can
// hit is an integer division by zero.
type Generator struct {
	src   RandomSource
	depth int
	vars  []string
	kinds map[string]string // declared name -> "int" | "double"
	order []string
}

const (
	MaxDepth      = 4
	MaxStatements = 8
)

func New(seed int64) *Generator {
	return newGenerator(&RandSource{rand.New(rand.NewSource(seed))})
}

func NewFromData(data []byte) *Generator {
	return newGenerator(&ByteSource{data: data})
}

func newGenerator(src RandomSource) *Generator {
	return &Generator{
		src:   src,
		vars:  []string{"x", "y", "z", "a", "b", "_t", "n1"},
		kinds: make(map[string]string),
	}
}

// Intn exposes the random source's Intn method for embedded structs.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

func (g *Generator) GenerateProgram() string {
	var sb strings.Builder
	count := g.src.Intn(MaxStatements) + 1
	for i := 0; i < count; i++ {
		sb.WriteString(g.GenerateNoise())
		sb.WriteString(g.GenerateStatement())
		sb.WriteString("\n")
	}
	return sb.String()
}

// GenerateNoise returns blank lines or indentation about 10% of the time.
func (g *Generator) GenerateNoise() string {
	if g.src.Intn(10) != 0 {
		return ""
	}

	var sb strings.Builder
	count := g.src.Intn(3) + 1
	for i := 0; i < count; i++ {
		switch g.src.Intn(3) {
		case 0:
			sb.WriteString(" ")
		case 1:
			sb.WriteString("\t")
		case 2:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (g *Generator) GenerateStatement() string {
	if len(g.order) == 0 {
		return g.GenerateDeclaration()
	}
	switch choice := g.src.Intn(10); {
	case choice < 3:
		return g.GenerateDeclaration()
	case choice < 5:
		return g.GenerateAssignment()
	default:
		return g.GeneratePrint()
	}
}

func (g *Generator) GenerateDeclaration() string {
	name := g.vars[g.src.Intn(len(g.vars))]
	kind, ok := g.kinds[name]
	if !ok {
		kind = "int"
		if g.src.Intn(2) == 0 {
			kind = "double"
		}
		g.kinds[name] = kind
		g.order = append(g.order, name)
	}

	if g.src.Intn(3) == 0 {
		return kind + " " + name + ";"
	}
	return kind + " " + name + g.space() + "=" + g.space() + g.GenerateLiteral(kind, true) + ";"
}

func (g *Generator) GenerateAssignment() string {
	target := g.order[g.src.Intn(len(g.order))]
	kind := g.kinds[target]

	var rhs string
	if sources := g.declaredOfKind(kind); len(sources) > 0 && g.src.Intn(2) == 0 {
		rhs = sources[g.src.Intn(len(sources))]
	} else {
		rhs = g.GenerateLiteral(kind, true)
	}

	semi := ";"
	if g.src.Intn(4) == 0 {
		semi = ""
	}
	return target + g.space() + "=" + g.space() + rhs + semi
}

func (g *Generator) GeneratePrint() string {
	return "print(" + g.GenerateExpression() + ");"
}

func (g *Generator) GenerateExpression() string {
	g.depth++
	defer func() { g.depth-- }()

	operand := g.GenerateOperand()
	if g.depth > MaxDepth || g.src.Intn(3) == 0 {
		return operand
	}
	ops := []string{"+", "-", "*", "/"}
	op := ops[g.src.Intn(len(ops))]
	return operand + g.space() + op + g.space() + g.GenerateExpression()
}

func (g *Generator) GenerateOperand() string {
	prefix := ""
	if g.src.Intn(6) == 0 {
		prefix = "-"
	}
	if len(g.order) > 0 && g.src.Intn(2) == 0 {
		return prefix + g.order[g.src.Intn(len(g.order))]
	}
	kind := "int"
	if g.src.Intn(3) == 0 {
		kind = "double"
	}
	return prefix + g.GenerateLiteral(kind, false)
}

// GenerateLiteral returns a literal of the given kind. Signed literals are
// only produced where the grammar allows them.
func (g *Generator) GenerateLiteral(kind string, signed bool) string {
	var sb strings.Builder
	if signed {
		switch g.src.Intn(5) {
		case 0:
			sb.WriteString("-")
		case 1:
			sb.WriteString("+")
		}
	}
	sb.WriteString(g.digits())
	if kind == "double" {
		sb.WriteString(".")
		sb.WriteString(g.digits())
	}
	return sb.String()
}

func (g *Generator) digits() string {
	n := g.src.Intn(4) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + g.src.Intn(10))
	}
	return string(b)
}

func (g *Generator) space() string {
	if g.src.Intn(3) == 0 {
		return " "
	}
	return ""
}

func (g *Generator) declaredOfKind(kind string) []string {
	var out []string
	for _, name := range g.order {
		if g.kinds[name] == kind {
			out = append(out, name)
		}
	}
	return out
}
