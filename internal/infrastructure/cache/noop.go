package cache

import (
	"context"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
)

var _ ports.Cache = Noop{}

// Noop caché deshabilitada: nunca encuentra nada y descarta las escrituras.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error          { return nil }
func (Noop) Delete(context.Context, ...string) error         { return nil }
