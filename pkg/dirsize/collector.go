package dirsize

import "sync"

// collector accumulates walk totals. fastwalk may invoke callbacks from its
// worker goroutine, so access goes through the mutex.
type collector struct {
	mu         sync.Mutex
	fileCount  int64
	totalBytes int64
	skipped    []SkippedPath
	progress   func(files, bytes int64)
	every      int64
}

func newCollector(progress func(files, bytes int64), every int64) *collector {
	if every <= 0 {
		every = DefaultProgressEvery
	}
	return &collector{progress: progress, every: every}
}

func (c *collector) addFile(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileCount++
	c.totalBytes += size
	if c.progress != nil && c.fileCount%c.every == 0 {
		c.progress(c.fileCount, c.totalBytes)
	}
}

func (c *collector) skip(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped = append(c.skipped, SkippedPath{Path: path, Err: err})
}

func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fileCount, c.totalBytes
}
