package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/keeper/pkg/adapters/fs"
)

// Init prepares the book directory at path and returns its store.
func Init(path string, opts ...Option) (*fs.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStore(context.Background(), path, o)
}

// Open initializes the store at path and loads the book into memory.
//
//	book, err := keeper.Open("./contacts", keeper.WithAutoInit(true))
func Open(path string, opts ...Option) (*Book, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ctx := context.Background()
	store, err := initStore(ctx, path, o)
	if err != nil {
		return nil, err
	}

	dirOpts := o.directoryOptions()
	d, err := store.Load(ctx, dirOpts...)
	if err != nil {
		return nil, err
	}

	return &Book{Directory: d, Store: store, dirOpts: dirOpts}, nil
}

func initStore(ctx context.Context, path string, o *options) (*fs.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	// Read-only and writable opens share the sandbox.
	useTemp := o.forceTemp || (IsDevRun() && o.devSafety)
	resolvedPath := ResolveBookPath(path, useTemp)

	if o.logger != nil && useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolvedPath)
	}

	store := fs.NewStore(fs.Config{
		Path:         resolvedPath,
		File:         o.file,
		AutoInit:     o.autoInit,
		MustExist:    o.mustExist || (!o.autoInit && !useTemp),
		Gitless:      !o.versioning,
		SystemDir:    o.systemDir,
		Strict:       o.strict,
		ReadOnly:     o.readOnly,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	for ext, s := range o.serializers {
		store.RegisterSerializer(ext, s)
	}

	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize book at %s: %w", resolvedPath, err)
	}
	return store, nil
}
