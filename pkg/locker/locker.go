package locker

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Locker взаимное исключение по именованным группам сущностей внутри процесса.
// Несколько групп захватываются в алфавитном порядке, поэтому два вызова
// с пересекающимися наборами групп не блокируют друг друга навсегда.
type Locker struct {
	mu     sync.Mutex
	groups map[string]chan struct{}
}

// New создает новый экземпляр Locker
func New() *Locker {
	return &Locker{groups: make(map[string]chan struct{})}
}

func (l *Locker) group(name string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.groups[name]
	if !ok {
		ch = make(chan struct{}, 1)
		l.groups[name] = ch
	}
	return ch
}

// Do захватывает группы, выполняет fn и освобождает группы на любом пути выхода.
// Ожидание прерывается отменой контекста.
func (l *Locker) Do(ctx context.Context, fn func(ctx context.Context) error, groups ...string) error {
	names := normalize(groups)

	acquired := make([]chan struct{}, 0, len(names))
	defer func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			<-acquired[i]
		}
	}()

	for _, name := range names {
		ch := l.group(name)
		select {
		case ch <- struct{}{}:
			acquired = append(acquired, ch)
		case <-ctx.Done():
			return fmt.Errorf("locker: wait for group %q: %w", name, ctx.Err())
		}
	}

	return fn(ctx)
}

func normalize(groups []string) []string {
	seen := make(map[string]struct{}, len(groups))
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}
