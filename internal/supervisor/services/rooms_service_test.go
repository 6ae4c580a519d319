// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type fakeEngine struct {
	startErrs atomic.Int32 // Start fails while positive
	started   atomic.Bool
	starts    atomic.Int32
	reloads   atomic.Int32
	purges    atomic.Int32
	reloadErr error
}

func (f *fakeEngine) Started() bool { return f.started.Load() }

func (f *fakeEngine) Start(context.Context) error {
	f.starts.Add(1)
	if f.startErrs.Add(-1) >= 0 {
		return errors.New("table unreachable")
	}
	f.started.Store(true)
	return nil
}

func (f *fakeEngine) Reload(context.Context) error {
	f.reloads.Add(1)
	return f.reloadErr
}

func (f *fakeEngine) PurgeCache() int {
	f.purges.Add(1)
	return 1
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNewRoomsService_Defaults(t *testing.T) {
	svc := NewRoomsService(&fakeEngine{}, RoomsServiceConfig{}, zerolog.Nop())

	if svc.config.PurgeInterval != time.Minute || svc.config.ReloadTimeout != time.Minute {
		t.Errorf("config = %+v", svc.config)
	}
	if svc.config.ReloadInterval != 0 {
		t.Errorf("ReloadInterval = %v, want disabled", svc.config.ReloadInterval)
	}
	if svc.String() != "rooms" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestRoomsService_StartFailureIsReturned(t *testing.T) {
	eng := &fakeEngine{}
	eng.startErrs.Store(1)
	svc := NewRoomsService(eng, RoomsServiceConfig{}, zerolog.Nop())

	if err := svc.Serve(context.Background()); err == nil {
		t.Fatal("Serve() should fail while the table is unreachable")
	}
	if eng.Started() {
		t.Error("engine marked started after failed load")
	}
}

func TestRoomsService_RetriedBySupervisor(t *testing.T) {
	eng := &fakeEngine{}
	eng.startErrs.Store(2)

	sup := suture.New("test", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewRoomsService(eng, RoomsServiceConfig{}, zerolog.Nop()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)
	eventually(t, eng.Started)
	cancel()
	<-errCh

	if got := eng.starts.Load(); got != 3 {
		t.Errorf("Start called %d times, want 3", got)
	}
}

func TestRoomsService_SkipsStartWhenStarted(t *testing.T) {
	eng := &fakeEngine{}
	eng.started.Store(true)
	svc := NewRoomsService(eng, RoomsServiceConfig{}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v", err)
	}
	if eng.starts.Load() != 0 {
		t.Error("Start called on a started engine")
	}
}

func TestRoomsService_ReloadsAndPurges(t *testing.T) {
	eng := &fakeEngine{reloadErr: errors.New("transient")}
	svc := NewRoomsService(eng, RoomsServiceConfig{
		ReloadInterval: 10 * time.Millisecond,
		PurgeInterval:  10 * time.Millisecond,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	// Reload errors are logged and the loop keeps running.
	eventually(t, func() bool { return eng.reloads.Load() >= 2 && eng.purges.Load() >= 2 })
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestRoomsService_NoReloadWhenDisabled(t *testing.T) {
	eng := &fakeEngine{}
	svc := NewRoomsService(eng, RoomsServiceConfig{PurgeInterval: 5 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	eventually(t, func() bool { return eng.purges.Load() >= 3 })
	cancel()
	<-done

	if eng.reloads.Load() != 0 {
		t.Errorf("Reload called %d times with reloading disabled", eng.reloads.Load())
	}
}
