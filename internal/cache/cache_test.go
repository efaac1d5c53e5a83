package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

func TestKey(t *testing.T) {
	a := Key("text", "groq", "llama", "hello")
	b := Key("text", "groq", "llama", "hello")
	if a != b {
		t.Errorf("Expected stable keys, got %s and %s", a, b)
	}
	if !strings.HasPrefix(a, "credcheck:v1:") {
		t.Errorf("Expected prefix, got %s", a)
	}
	// Part boundaries matter: ("ab","c") must differ from ("a","bc").
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("Expected distinct keys for different part boundaries")
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	if _, ok := New(model.CacheConfig{Enabled: false}).(Noop); !ok {
		t.Error("Expected Noop when disabled")
	}
	if _, ok := New(model.CacheConfig{Enabled: true, MemoryTTL: time.Minute}).(*MemoryCache); !ok {
		t.Error("Expected MemoryCache without disk dir")
	}
	if _, ok := New(model.CacheConfig{Enabled: true, DiskDir: t.TempDir()}).(*LayeredCache); !ok {
		t.Error("Expected LayeredCache with disk dir")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss")
	}
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if val, found := c.Get("k"); !found || string(val) != "v" {
		t.Errorf("Expected v, got %q (found=%v)", val, found)
	}

	_ = c.Set("short", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("short"); found {
		t.Error("Expected entry to expire")
	}

	_ = c.Delete("k")
	if c.Len() != 0 {
		t.Errorf("Expected empty cache, got %d", c.Len())
	}
}

func TestDiskCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "verdicts")
	c := NewDiskCache(dir, time.Hour)
	key := Key("url", "https://example.com")

	if err := c.Set(key, []byte(`{"score":12}`), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if val, found := c.Get(key); !found || string(val) != `{"score":12}` {
		t.Errorf("Unexpected value %q (found=%v)", val, found)
	}

	// Survives a new instance over the same directory.
	if _, found := NewDiskCache(dir, time.Hour).Get(key); !found {
		t.Error("Expected entry to persist")
	}

	if err := c.Set("expired", []byte("x"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("expired"); found {
		t.Error("Expected expired entry to be dropped")
	}

	if err := c.Delete(key); err != nil {
		t.Errorf("Delete failed: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Deleting a missing key should not fail: %v", err)
	}
}

func TestDiskCache_CorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := os.WriteFile(filepath.Join(dir, "bad.cache"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("bad"); found {
		t.Error("Expected corrupt entry to be a miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	if err := NewDiskCache(dir, time.Hour).Set("k", []byte("from-disk"), 0); err != nil {
		t.Fatal(err)
	}

	c := NewLayeredCache(time.Minute, dir, time.Hour)
	if val, found := c.Get("k"); !found || string(val) != "from-disk" {
		t.Fatalf("Expected disk hit, got %q (found=%v)", val, found)
	}
	if val, found := c.memory.Get("k"); !found || string(val) != "from-disk" {
		t.Error("Expected disk hit to be promoted to memory")
	}

	if err := c.Clear(); err != nil {
		t.Errorf("Clear failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after Clear")
	}
}

func TestJudgments(t *testing.T) {
	store := NewJudgments(NewMemoryCache(time.Minute, time.Minute))
	key := Key("text", "groq", "llama", "Miracle cure!!!")

	if _, found := store.Lookup(key); found {
		t.Error("Expected miss on empty store")
	}

	scored := model.Scored(82, "sensational claims", "groq")
	if err := store.Store(key, scored); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	got, found := store.Lookup(key)
	if !found || got.Score != 82 || got.Source != "groq" || got.Rationale != "sensational claims" {
		t.Errorf("Unexpected judgment %+v (found=%v)", got, found)
	}

	other := Key("url", "groq", "llama", "https://bit.ly/x")
	if err := store.Store(other, model.Unavailable("adjudicator timeout")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, found := store.Lookup(other); found {
		t.Error("Expected Unavailable judgments not to be cached")
	}
}

func TestJudgments_NilBackend(t *testing.T) {
	store := NewJudgments(nil)
	if err := store.Store("k", model.Scored(10, "", "mock")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, found := store.Lookup("k"); found {
		t.Error("Expected nil backend to store nothing")
	}
}
