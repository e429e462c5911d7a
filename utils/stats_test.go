package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(0, 10, 0)
	if s.AveragePopulation != 10 {
		t.Errorf("Expected first sample to seed the average, got %v", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 0 {
		t.Errorf("Expected no rate for a zero duration, got %v", s.GenerationsPerSecond)
	}

	s.Update(1, 20, 100*time.Millisecond)
	if s.AveragePopulation != 11 {
		t.Errorf("Expected moving average 11, got %v", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("Expected 10 gen/sec, got %v", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 1 || s.ActiveCells != 20 {
		t.Errorf("Expected generation 1 with 20 cells, got %d / %d", s.TotalGenerations, s.ActiveCells)
	}
	if s.Runtime() < 0 {
		t.Error("Expected non-negative runtime")
	}
}
