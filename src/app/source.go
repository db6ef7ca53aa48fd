package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/simivar/dpf-sprite-browser/src/dump"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// SourceKind says how the payload of a dump file is encoded.
type SourceKind int

const (
	HexText SourceKind = iota
	Binary
)

// Source is a dump file read into memory with any compression removed.
type Source struct {
	Path string
	Name string
	Kind SourceKind
	Raw  []byte
}

// ReadSource reads path, decompressing a trailing .xz or .lzma wrapper, and
// classifies the inner file by extension: .txt is hex text, .bin is binary.
func ReadSource(path string) (Source, error) {
	inner, compression := splitCompression(path)
	kind, err := sourceKind(inner)
	if err != nil {
		return Source{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 1<<20)
	r, err := decompressor(br, compression)
	if err != nil {
		return Source{}, fmt.Errorf("%s reader for %q: %w", strings.TrimPrefix(compression, "."), path, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("read %q: %w", path, err)
	}

	log.Debug().
		Str("file", path).
		Str("compression", compression).
		Int("bytes", len(data)).
		Msg("read source")

	return Source{
		Path: path,
		Name: filepath.Base(inner),
		Kind: kind,
		Raw:  data,
	}, nil
}

// Words decodes the source as a sequence of 32-bit words: 8-digit hex tokens
// for text, big-endian groups of four bytes for binary.
func (s Source) Words() ([]uint32, error) {
	var (
		words []uint32
		err   error
	)
	switch s.Kind {
	case HexText:
		words, err = dump.LoadHexWords(string(s.Raw), 8)
	default:
		words, err = dump.LoadBinaryWords(s.Raw, 4)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return words, nil
}

// Bytes decodes the source as a byte sequence: 2-digit hex tokens for text,
// the raw payload for binary.
func (s Source) Bytes() ([]byte, error) {
	if s.Kind != HexText {
		return s.Raw, nil
	}
	b, err := dump.LoadHexBytes(string(s.Raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return b, nil
}

// ReadWords is ReadSource followed by Words.
func ReadWords(path string) ([]uint32, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return src.Words()
}

func sourceKind(path string) (SourceKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return HexText, nil
	case ".bin":
		return Binary, nil
	default:
		return 0, fmt.Errorf("%w: unsupported file type %q", dump.ErrUnknownFormat, filepath.Base(path))
	}
}

func decompressor(r io.Reader, compression string) (io.Reader, error) {
	switch compression {
	case ".xz":
		return xz.NewReader(r)
	case ".lzma":
		return lzma.NewReader(r)
	default:
		return r, nil
	}
}
