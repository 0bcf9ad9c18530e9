package platform

import (
	"context"
	"io"

	"github.com/aretw0/keeper/pkg/adapters/fs"
	"github.com/aretw0/keeper/pkg/core"
)

// Book couples an in-memory Directory with the store it was loaded from.
type Book struct {
	*core.Directory
	Store *fs.Store

	dirOpts []core.Option
}

// Save persists the directory. changeReason becomes the commit message when
// the book is versioned.
func (b *Book) Save(ctx context.Context, changeReason string) error {
	if changeReason != "" {
		ctx = context.WithValue(ctx, core.ChangeReasonKey, changeReason)
	}
	return b.Store.Save(ctx, b.Directory)
}

// Reload replaces the in-memory directory with the persisted one.
func (b *Book) Reload(ctx context.Context) error {
	d, err := b.Store.Load(ctx, b.dirOpts...)
	if err != nil {
		return err
	}
	b.Directory = d
	return nil
}

// Import merges every file matching pattern into the directory.
func (b *Book) Import(ctx context.Context, pattern string) (int, error) {
	return b.Store.Import(ctx, b.Directory, pattern)
}

// Export writes the directory to w in the given format.
func (b *Book) Export(ctx context.Context, w io.Writer, format string) error {
	return b.Store.Export(ctx, b.Directory, w, format)
}

// Watch reports changes of the book file.
func (b *Book) Watch(ctx context.Context) (<-chan core.Event, error) {
	return b.Store.Watch(ctx, "")
}
