package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// instance is one Chrome process and the pages currently open on it.
type instance struct {
	rod      *rod.Browser
	launcher *launcher.Launcher
	active   int
	retired  bool
	down     bool
}

func (i *instance) shutdown() error {
	if i.down {
		return nil
	}
	i.down = true
	err := i.rod.Close()
	i.launcher.Kill()
	return err
}

// browser owns a headless Chrome process and replaces it after maxPages
// pages so long runs do not accumulate renderer memory. A replaced process
// stays up until the last page opened on it is released.
// browser is safe for concurrent use.
type browser struct {
	mu       sync.Mutex
	current  *instance
	retired  map[*instance]struct{}
	pages    int64
	maxPages int64
}

func launchBrowser(maxPages int64) (*browser, error) {
	inst, err := launchInstance()
	if err != nil {
		return nil, err
	}
	return &browser{
		current:  inst,
		retired:  make(map[*instance]struct{}),
		maxPages: maxPages,
	}, nil
}

// acquire returns the current browser and a func that must be called once
// the page opened on it is closed. The browser is replaced first if it has
// served maxPages pages. Returns nil after close.
func (b *browser) acquire() (*rod.Browser, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil, nil
	}
	if b.maxPages > 0 && b.pages >= b.maxPages {
		b.recycle()
	}
	b.pages++

	inst := b.current
	inst.active++

	var once sync.Once
	return inst.rod, func() {
		once.Do(func() { b.release(inst) })
	}
}

func (b *browser) release(inst *instance) {
	b.mu.Lock()
	defer b.mu.Unlock()

	inst.active--
	if inst.retired && inst.active == 0 {
		delete(b.retired, inst)
		_ = inst.shutdown()
	}
}

func launchInstance() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	rb := rod.New().ControlURL(u)
	if err := rb.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &instance{rod: rb, launcher: l}, nil
}

// recycle swaps in a fresh browser. If the launch fails the old one stays.
// The old browser is shut down now if idle, otherwise by its last release.
// Must be called with mu held.
func (b *browser) recycle() {
	next, err := launchInstance()
	if err != nil {
		return
	}

	old := b.current
	b.current = next
	b.pages = 0

	if old.active == 0 {
		_ = old.shutdown()
		return
	}
	old.retired = true
	b.retired[old] = struct{}{}
}

// close shuts down the current browser and any retired ones still serving pages.
func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}
	err := b.current.shutdown()
	b.current = nil

	for inst := range b.retired {
		_ = inst.shutdown()
		delete(b.retired, inst)
	}
	return err
}

// retiredCount reports how many replaced browsers still have pages open.
func (b *browser) retiredCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.retired)
}

func (b *browser) pid() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return 0
	}
	return b.current.launcher.PID()
}
