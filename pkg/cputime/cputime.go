// Package cputime measures the CPU time consumed by a region of code.
package cputime

import (
	"time"
)

// Usage is CPU time split into user and system time.
type Usage struct {
	User   time.Duration
	System time.Duration
}

// Total returns user plus system time.
func (u Usage) Total() time.Duration {
	return u.User + u.System
}

// Per divides both components by n. A non-positive n yields the zero Usage.
func (u Usage) Per(n int) Usage {
	if n <= 0 {
		return Usage{}
	}
	return Usage{
		User:   u.User / time.Duration(n),
		System: u.System / time.Duration(n),
	}
}

// Sub returns u - v.
func (u Usage) Sub(v Usage) Usage {
	return Usage{User: u.User - v.User, System: u.System - v.System}
}

// Meter measures one region. It is not safe for concurrent use.
type Meter struct {
	start  Usage
	unlock func()
}

// Start begins a measurement. The caller must call Stop on the same
// goroutine.
func Start() *Meter {
	m := &Meter{unlock: pin()}
	m.start = now()
	return m
}

// Stop ends the measurement and returns the CPU time consumed since Start.
func (m *Meter) Stop() Usage {
	end := now()
	if m.unlock != nil {
		m.unlock()
		m.unlock = nil
	}
	return end.Sub(m.start)
}
