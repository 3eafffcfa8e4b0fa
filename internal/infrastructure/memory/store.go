// Package memory implementa los repositorios sobre listas en memoria.
//
// Hace el papel del backend simulado: cada operación duerme una latencia
// configurable antes de responder, igual que los timers que reemplaza, y
// respeta la cancelación del contexto. No hay persistencia: el estado vive
// mientras viva el proceso.
package memory

import (
	"context"
	"time"
)

// latencySimulator espera la latencia simulada o la cancelación del contexto,
// lo que ocurra primero. Con latencia 0 solo verifica el contexto.
type latencySimulator struct {
	latency time.Duration
}

func (l latencySimulator) wait(ctx context.Context) error {
	if l.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(l.latency):
		return nil
	}
}
