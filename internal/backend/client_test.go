package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/StudioBellaVista/salon-admin/internal/models"
)

func TestListReadsThroughCache(t *testing.T) {
	var hits int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 7, "appointment_date": "2026-03-15", "status": "confirmed"}]`))
	}))
	defer upstream.Close()

	c := New(Options{BaseURL: upstream.URL, Logger: zerolog.Nop()})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		out, err := c.ListAppointments(ctx)
		if err != nil {
			t.Fatalf("ListAppointments: %v", err)
		}
		if len(out) != 1 || out[0].ID != 7 {
			t.Fatalf("unexpected list: %+v", out)
		}
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected 1 upstream hit within the TTL, got %d", got)
	}
}

func TestWriteInvalidatesAppointmentsCache(t *testing.T) {
	var listHits int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/appointments/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			atomic.AddInt32(&listHits, 1)
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42}`))
	})

	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	c := New(Options{BaseURL: upstream.URL, Logger: zerolog.Nop()})
	ctx := context.Background()

	c.ListAppointments(ctx)
	c.ListAppointments(ctx)
	if atomic.LoadInt32(&listHits) != 1 {
		t.Fatalf("expected cached second read, got %d hits", listHits)
	}

	if _, err := c.CreateAppointment(ctx, &models.Appointment{}); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	c.ListAppointments(ctx)
	if got := atomic.LoadInt32(&listHits); got != 2 {
		t.Fatalf("write must invalidate the appointments cache, got %d hits", got)
	}
}

func TestConflictQueriesBypassCache(t *testing.T) {
	var hits int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/appointments/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/api/appointments/available_slots/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"available_slots": ["09:00"]}`))
	})

	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	c := New(Options{BaseURL: upstream.URL, Logger: zerolog.Nop()})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.AvailableSlots(ctx, "2026-03-15", 10); err != nil {
			t.Fatalf("AvailableSlots: %v", err)
		}
		if _, err := c.ListAppointmentsFor(ctx, "2026-03-15", 10); err != nil {
			t.Fatalf("ListAppointmentsFor: %v", err)
		}
	}

	// Quatro chamadas, quatro hits: nada veio de cache.
	if got := atomic.LoadInt32(&hits); got != 4 {
		t.Fatalf("conflict queries must always be fresh, got %d hits", got)
	}
}

func TestErrorChannels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/clients/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"non_field_errors": ["Telefone inválido"]}`))
	})
	mux.HandleFunc("/api/services/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	c := New(Options{BaseURL: upstream.URL, Logger: zerolog.Nop()})
	ctx := context.Background()

	_, err := c.CreateClient(ctx, &models.Client{Name: "Maria"})
	if !IsValidation(err) {
		t.Fatalf("4xx must surface as validation error, got %v", err)
	}
	if ValidationMessage(err) != "Telefone inválido" {
		t.Fatalf("first message must survive verbatim, got %q", ValidationMessage(err))
	}

	_, err = c.ListServices(ctx)
	if err == nil || IsValidation(err) || IsTransport(err) {
		t.Fatalf("5xx must be a plain error, got %v", err)
	}

	// Porta fechada: falha de transporte.
	down := New(Options{BaseURL: "http://127.0.0.1:1", Logger: zerolog.Nop()})
	_, err = down.ListServices(ctx)
	if !IsTransport(err) {
		t.Fatalf("unreachable backend must be a transport error, got %v", err)
	}
}
