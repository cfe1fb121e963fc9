package session

import (
	"sync"
	"time"
)

// Timer reports the elapsed session time once per interval. onTick runs on
// the timer goroutine and must not block.
type Timer struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartTimer begins ticking. A nil onTick yields a Timer that never fires.
func StartTimer(start time.Time, interval time.Duration, now func() time.Time, onTick func(time.Duration)) *Timer {
	t := &Timer{stop: make(chan struct{}), done: make(chan struct{})}
	if onTick == nil {
		close(t.done)
		return t
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer close(t.done)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				select {
				case <-t.stop:
					return
				default:
				}
				onTick(now().Sub(start))
			}
		}
	}()
	return t
}

// Stop halts the timer. No tick is delivered after Stop returns. Safe to
// call more than once and on a nil Timer.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}
