package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Поднимать при изменении формата CachePayload.
const cacheSchemaVersion uint16 = 1

// Digest — ключ кеша, SHA-256 от текста выражения и режима вычисления.
type Digest [sha256.Size]byte

// CachePayload — закешированный результат успешного вычисления.
// NaN сериализуется без потерь: msgpack хранит сырые биты float64.
type CachePayload struct {
	Schema uint16

	Expr   string
	Render string
	Value  float64
	Strict bool
}

// Cache хранит результаты вычислений по Digest на диске.
// Безопасен для конкурентного доступа.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache открывает кеш в стандартном месте: $XDG_CACHE_HOME/<app>
// либо ~/.cache/<app>.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// ExprKey считает ключ кеша. Режим входит в ключ, чтобы ieee- и
// strict-результаты одного выражения не вытесняли друг друга.
func ExprKey(expr string, strict bool) Digest {
	h := sha256.New()
	h.Write([]byte("calc-exprs/v1\x00"))
	if strict {
		h.Write([]byte("strict\x00"))
	} else {
		h.Write([]byte("ieee\x00"))
	}
	h.Write([]byte(expr))

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "exprs" - для удобства просмотра и очистки
	return filepath.Join(c.dir, "exprs", hexKey+".mp")
}

// Put сериализует и атомарно записывает результат в кеш.
func (c *Cache) Put(key Digest, payload *CachePayload) error {
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
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get читает результат из кеша. Несовпадение схемы, выражения или режима
// считается промахом: такая запись будет перезаписана следующим Put.
func (c *Cache) Get(key Digest, expr string, strict bool, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion || out.Expr != expr || out.Strict != strict {
		return false, nil
	}
	return true, nil
}

// DropAll инвалидирует весь кеш, полезно после смены формата.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
