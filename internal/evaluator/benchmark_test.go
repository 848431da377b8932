package evaluator

import "testing"

func BenchmarkEval(b *testing.B) {
	src := []byte("# benchmark\n(1 + 2.5) * 3 ** 2 ** 0.5 - -4 / (7 - 3) + 123456789 * 2\n")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Eval(src); err != nil {
			b.Fatalf("eval: %v", err)
		}
	}
}
