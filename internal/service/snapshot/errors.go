package snapshot

import "errors"

// ErrLoad возвращается, если хотя бы одно чтение среза не удалось
var ErrLoad = errors.New("snapshot: failed to load")
