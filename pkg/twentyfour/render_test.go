package twentyfour

import "testing"

// treeBuilder assembles arena trees by hand for rendering tests.
type treeBuilder struct{ s *search }

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{s: &search{}}
}

func (b *treeBuilder) leaf(v int) int {
	b.s.arena = append(b.s.arena, node{leaf: true, value: Int(v)})
	return len(b.s.arena) - 1
}

func (b *treeBuilder) bin(op Operator, left, right int) int {
	value, _ := op.Apply(b.s.arena[left].value, b.s.arena[right].value)
	b.s.arena = append(b.s.arena, node{op: op, left: left, right: right, value: value})
	return len(b.s.arena) - 1
}

func TestRender_MinimalParentheses(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *treeBuilder) int
		want  string
	}{
		{"leaf", func(b *treeBuilder) int { return b.leaf(24) }, "24"},
		{"fixture", func(b *treeBuilder) int {
			return b.bin(Multiply, b.bin(Subtract, b.leaf(7), b.bin(Divide, b.leaf(8), b.leaf(8))), b.leaf(4))
		}, "(7 - 8 / 8) x 4"},
		{"fraction in denominator", func(b *treeBuilder) int {
			return b.bin(Divide, b.leaf(8), b.bin(Subtract, b.leaf(3), b.bin(Divide, b.leaf(8), b.leaf(3))))
		}, "8 / (3 - 8 / 3)"},
		{"right subtraction wrapped", func(b *treeBuilder) int {
			return b.bin(Subtract, b.leaf(1), b.bin(Subtract, b.leaf(2), b.leaf(3)))
		}, "1 - (2 - 3)"},
		{"right addition under minus wrapped", func(b *treeBuilder) int {
			return b.bin(Subtract, b.leaf(1), b.bin(Add, b.leaf(2), b.leaf(3)))
		}, "1 - (2 + 3)"},
		{"left chain unwrapped", func(b *treeBuilder) int {
			return b.bin(Subtract, b.bin(Add, b.leaf(1), b.leaf(2)), b.leaf(3))
		}, "1 + 2 - 3"},
		{"left subtraction unwrapped", func(b *treeBuilder) int {
			return b.bin(Subtract, b.bin(Subtract, b.leaf(1), b.leaf(2)), b.leaf(3))
		}, "1 - 2 - 3"},
		{"right addition under plus unwrapped", func(b *treeBuilder) int {
			return b.bin(Add, b.leaf(1), b.bin(Subtract, b.leaf(2), b.leaf(3)))
		}, "1 + 2 - 3"},
		{"right product under divide wrapped", func(b *treeBuilder) int {
			return b.bin(Divide, b.leaf(8), b.bin(Multiply, b.leaf(2), b.leaf(2)))
		}, "8 / (2 x 2)"},
		{"left product under divide unwrapped", func(b *treeBuilder) int {
			return b.bin(Divide, b.bin(Multiply, b.leaf(8), b.leaf(2)), b.leaf(2))
		}, "8 x 2 / 2"},
		{"two sums", func(b *treeBuilder) int {
			return b.bin(Multiply, b.bin(Add, b.leaf(1), b.leaf(2)), b.bin(Add, b.leaf(3), b.leaf(4)))
		}, "(1 + 2) x (3 + 4)"},
		{"product inside sum unwrapped", func(b *treeBuilder) int {
			return b.bin(Add, b.bin(Multiply, b.leaf(4), b.leaf(5)), b.bin(Multiply, b.leaf(2), b.leaf(2)))
		}, "4 x 5 + 2 x 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTreeBuilder()
			root := tt.build(b)
			got := b.s.render(root)
			if got != tt.want {
				t.Fatalf("render = %q, want %q", got, tt.want)
			}
			// The rendered text must mean the same thing as the tree.
			want := b.s.arena[root].value.Float64()
			v, err := Evaluate(got)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", got, err)
			}
			if d := v - want; d > 1e-9 || d < -1e-9 {
				t.Errorf("Evaluate(%q) = %v, tree value %v", got, v, want)
			}
		})
	}
}
