package brewing

import (
	"context"
	"testing"
)

func BenchmarkEnumerate_Sequential(b *testing.B) {
	engine := sampleEngine(b, Options{MaxIngredients: 4, Workers: 1})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Enumerate(ctx, Query{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnumerate_Sharded(b *testing.B) {
	engine := sampleEngine(b, Options{MaxIngredients: 4, Workers: 8})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Enumerate(ctx, Query{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBrew(b *testing.B) {
	engine := sampleEngine(b, DefaultOptions())
	ctx := context.Background()
	names := []string{"Wheat", "Blue Mountain Flower", "Giant's Toe"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := engine.Brew(ctx, names); err != nil {
			b.Fatal(err)
		}
	}
}
