package apptest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
)

// Cache caché en memoria que serializa con JSON, como el adaptador Redis.
type Cache struct {
	mu      sync.Mutex
	data    map[string][]byte
	Deleted []string
}

var _ ports.Cache = (*Cache)(nil)

// NewCache crea una caché vacía.
func NewCache() *Cache { return &Cache{data: map[string][]byte{}} }

func (c *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *Cache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.Deleted = append(c.Deleted, k)
	}
	return nil
}

// Has indica si la clave está cacheada.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// RecordedActivity acción capturada por Recorder.
type RecordedActivity struct {
	Actor      ports.Actor
	Action     string
	Resource   string
	ResourceID string
	Details    map[string]any
}

// Recorder ActivityRecorder que guarda las acciones en memoria.
type Recorder struct {
	mu      sync.Mutex
	Entries []RecordedActivity
}

var _ ports.ActivityRecorder = (*Recorder)(nil)

func (r *Recorder) Record(_ context.Context, actor ports.Actor, action, resource, resourceID string, details map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, RecordedActivity{actor, action, resource, resourceID, details})
}

// Actions devuelve las acciones registradas en orden.
func (r *Recorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Action)
	}
	return out
}
