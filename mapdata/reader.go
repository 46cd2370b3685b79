package mapdata

import (
	"log/slog"
	"os"

	"github.com/eak1mov/go-libmaps/container"
	"github.com/eak1mov/go-libmaps/container/spec"
)

type readerConfig struct {
	LengthEncoding spec.LengthEncoding
	Logger         *slog.Logger
}

type ReaderOption func(*readerConfig)

func WithLengthEncoding(enc spec.LengthEncoding) ReaderOption {
	return func(c *readerConfig) { c.LengthEncoding = enc }
}

func WithLogger(logger *slog.Logger) ReaderOption {
	return func(c *readerConfig) { c.Logger = logger }
}

// Read decodes a container and builds its Map.
func Read(data []byte, opts ...ReaderOption) (*Map, error) {
	config := readerConfig{
		LengthEncoding: spec.LengthU16,
		Logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	doc, err := container.Decode(data, container.WithLengthEncoding(config.LengthEncoding))
	if err != nil {
		return nil, err
	}
	config.Logger.Debug("libmaps: decoded", "package", doc.Package, "bytes", len(data))

	m, err := Build(doc)
	if err != nil {
		return nil, err
	}
	config.Logger.Debug("libmaps: built", "package", m.Package, "rooms", len(m.Rooms), "fillers", len(m.Fillers))

	return m, nil
}

// ReadFile reads and decodes the map file at filePath.
func ReadFile(filePath string, opts ...ReaderOption) (*Map, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Read(data, opts...)
}
