package filer

import (
	"fmt"
	"os"
	"time"

	"github.com/Kargones/xplatfs/internal/pkg/logging"
	"github.com/Kargones/xplatfs/internal/pkg/metrics"
)

// NewBackend создает бэкенд указанного типа.
func NewBackend(fsType FSType) (FileSystem, error) {
	switch fsType {
	case DiskFS:
		return NewDiskFileSystem(), nil
	case MemoryFS:
		return NewMemoryFileSystem(), nil
	default:
		return nil, fmt.Errorf("%w: неподдерживаемый тип файловой системы: %s", ErrInvalidConfig, fsType)
	}
}

// NewFilesystem создает движок файловой системы с применением опций.
//
// Пример:
//
//	fsys, err := filer.NewFilesystem(
//	    filer.WithIdentity("acme", "backup"),
//	    filer.WithLogger(logger),
//	)
func NewFilesystem(options ...Option) (*Filesystem, error) {
	config := NewConfig(options...)
	if config.ChunkSize == 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	backend := config.Backend
	if backend == nil {
		var err error
		if backend, err = NewBackend(config.Type); err != nil {
			return nil, err
		}
	}

	platform := config.Platform
	if platform == nil {
		platform = NewPlatformPaths(os.LookupEnv)
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	collector := config.Metrics
	if collector == nil {
		collector = metrics.NewNopCollector()
	}

	return &Filesystem{
		backend:  backend,
		platform: platform,
		identity: config.Identity,
		chunk:    config.ChunkSize,
		logger:   logger,
		metrics:  collector,
		temps:    NewTempManager(backend),
		pid:      os.Getpid(),
		now:      time.Now,
	}, nil
}
