package engine

import "testing"

func BenchmarkLegalMoves(b *testing.B) {
	g := NewGame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.LegalMoves(g.Turn())
	}
}

func BenchmarkStatus(b *testing.B) {
	g := NewGame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Status()
	}
}

func BenchmarkPerft2(b *testing.B) {
	g := NewGame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perft(g, 2)
	}
}
