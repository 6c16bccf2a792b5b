package log

import (
	"testing"
)

// Test for race conditions.
func TestLogger(t *testing.T) {
	ch := make(chan int, 100)
	for i := 0; i < 100; i++ {
		go func(i int) {
			Logger(Locg)
			Logger(Web)
			ch <- i
		}(i)
	}
	for i := 0; i < 100; i++ {
		<-ch
	}
}

func TestLoggerSameInstance(t *testing.T) {
	if Logger(CLI) != Logger(CLI) {
		t.Error("expected the same logger instance for the same name")
	}
}
