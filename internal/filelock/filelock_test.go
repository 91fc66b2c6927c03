package filelock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := NewFileLock(lockPath)
	require.NotNil(t, lock)
	assert.Equal(t, lockPath, lock.path)
}

func TestLockContextUnlock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "test.lock"))

	require.NoError(t, lock.LockContext(context.Background()))
	require.NoError(t, lock.Unlock())

	// Released locks can be taken again
	require.NoError(t, lock.LockContext(context.Background()))
	require.NoError(t, lock.Unlock())
}

func TestLockContextTimeout(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	holder := NewFileLock(lockPath)
	require.NoError(t, holder.LockContext(context.Background()))
	defer holder.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := NewFileLock(lockPath).LockContext(ctx)
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestLockContextWaitsForRelease(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	holder := NewFileLock(lockPath)
	require.NoError(t, holder.LockContext(context.Background()))
	go func() {
		time.Sleep(100 * time.Millisecond)
		holder.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	waiter := NewFileLock(lockPath)
	require.NoError(t, waiter.LockContext(ctx))
	require.NoError(t, waiter.Unlock())
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.txt")

	require.NoError(t, AtomicWrite(path, []byte("3 a%d.png 1-3\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3 a%d.png 1-3\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestAtomicWriteOverwriteAndCleanup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.txt")

	require.NoError(t, AtomicWrite(path, []byte("old content that is longer")))
	require.NoError(t, AtomicWrite(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestAtomicWriteCreateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "listing.json")

	require.NoError(t, AtomicWrite(path, []byte("{}")))
	assert.FileExists(t, path)
}

func TestLockAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.txt")

	require.NoError(t, LockAndWrite(context.Background(), path, []byte("content")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.NoFileExists(t, path+".lock", "lock file is removed after the write")
}

func TestLockAndWriteHeldLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.txt")

	holder := NewFileLock(path + ".lock")
	require.NoError(t, holder.LockContext(context.Background()))
	defer holder.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := LockAndWrite(ctx, path, []byte("content"))
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.NoFileExists(t, path)
}

func TestConcurrentLockAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.txt")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content := strings.Repeat(fmt.Sprintf("%d", i), 1000)
			assert.NoError(t, LockAndWrite(context.Background(), path, []byte(content)))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 1000)
	assert.Equal(t, strings.Repeat(string(data[0]), 1000), string(data), "file must hold exactly one writer's content")
}
