// Package cache stores transformation results on disk, keyed by the source
// text and the options that produced them.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/reloopjs/reloop/transform"
)

// Increment when Entry changes shape.
const schemaVersion uint16 = 1

// Key identifies one transformation.
type Key [sha256.Size]byte

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// NewKey hashes the tool version, the passes and the source.
func NewKey(version string, passes []transform.Pass, source string) Key {
	h := sha256.New()
	write := func(s string) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], safecast.MustConv[uint32](len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}
	write(version)
	if len(passes) == 0 {
		passes = transform.AllPasses
	}
	for _, p := range passes {
		write(string(p))
	}
	write(source)

	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// Entry is a cached result.
type Entry struct {
	Schema uint16 `msgpack:"schema"`
	Output string `msgpack:"output"`

	// Rewrite counts, narrowed for storage.
	BlocksAdded         uint32 `msgpack:"blocks_added"`
	ForLoops            uint32 `msgpack:"for_loops"`
	DoWhileLoops        uint32 `msgpack:"do_while_loops"`
	ContinuesRedirected uint32 `msgpack:"continues_redirected"`
}

// NewEntry records output and report.
func NewEntry(output string, report transform.Report) (*Entry, error) {
	e := &Entry{Schema: schemaVersion, Output: output}
	var err error
	if e.BlocksAdded, err = safecast.Conv[uint32](report.BlocksAdded); err != nil {
		return nil, err
	}
	if e.ForLoops, err = safecast.Conv[uint32](report.ForLoops); err != nil {
		return nil, err
	}
	if e.DoWhileLoops, err = safecast.Conv[uint32](report.DoWhileLoops); err != nil {
		return nil, err
	}
	if e.ContinuesRedirected, err = safecast.Conv[uint32](report.ContinuesRedirected); err != nil {
		return nil, err
	}
	return e, nil
}

// Report restores the rewrite counts.
func (e *Entry) Report() transform.Report {
	return transform.Report{
		BlocksAdded:         int(e.BlocksAdded),
		ForLoops:            int(e.ForLoops),
		DoWhileLoops:        int(e.DoWhileLoops),
		ContinuesRedirected: int(e.ContinuesRedirected),
	}
}

// Cache is a directory of msgpack encoded entries. A nil *Cache is a valid
// cache that never hits. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Dir returns the default cache directory for app.
func Dir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates dir if needed and returns a cache rooted there.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Key) string {
	s := key.String()
	return filepath.Join(c.dir, s[:2], s+".mp")
}

// Put writes e under key. The file is replaced atomically.
func (c *Cache) Put(key Key, e *Entry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(e); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the entry stored under key. Entries written by another schema
// version are misses.
func (c *Cache) Get(key Key) (*Entry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var e Entry
	if err := msgpack.NewDecoder(f).Decode(&e); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	if e.Schema != schemaVersion {
		return nil, false, nil
	}
	return &e, true, nil
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
