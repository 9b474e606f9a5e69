package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		latex string
		want  string
	}{
		{"greek", `\alpha + \beta`, "α + β"},
		{"superscript digit", `x^2`, "x²"},
		{"subscript group", `x_{10}`, "x₁₀"},
		{"superscript fallback", `e^{i\pi}`, "e^iπ"},
		{"superscript fallback parenthesized", `e^{x+\pi}`, "e^(x+π)"},
		{"simple fraction", `\frac{a}{b}`, "a/b"},
		{"compound fraction", `\frac{a+b}{2}`, "(a+b)/2"},
		{"square root", `\sqrt{x}`, "√x"},
		{"cube root", `\sqrt[3]{8}`, "∛8"},
		{"compound root", `\sqrt{a+b}`, "√(a+b)"},
		{"relations", `a \leq b \neq c`, "a ≤ b ≠ c"},
		{"delimiters", `\left(x\right)`, "(x)"},
		{"empty delimiter", `\left.x\right|`, "x|"},
		{"text", `\text{if } x`, "if  x"},
		{"escaped brace", `\{1\}`, "{1}"},
		{"unknown command", `\foo`, `\foo`},
		{"environment", "\\begin{aligned}a &= b\\end{aligned}", "a  = b"},
		{"newlines", "\na\n", "a"},
		{"greater than", "a > b", "a > b"},
		{"sum with limits", `\sum_{i=1}^n i`, "∑ᵢ₌₁ⁿ i"},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Convert(tt.latex))
		})
	}
}

func TestMakeSqrt(t *testing.T) {
	assert.Equal(t, "√2", MakeSqrt("", "2"))
	assert.Equal(t, "∜x", MakeSqrt("4", "x"))
	assert.Equal(t, "⁵√x", MakeSqrt("5", "x"))
}

func TestScripts(t *testing.T) {
	assert.Equal(t, "", MakeSubscript("  "))
	assert.Equal(t, "_β", MakeSubscript("β"))
	assert.Equal(t, "⁻¹", MakeSuperscript("-1"))
}
