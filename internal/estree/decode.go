package estree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"lintcore/internal/ast"
	"lintcore/internal/source"
)

// Encoding of a tree document on disk.
type Encoding uint8

const (
	EncodingAuto Encoding = iota
	EncodingJSON
	EncodingMsgpack
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingMsgpack:
		return "msgpack"
	default:
		return "auto"
	}
}

// EncodingFromPath picks the encoding by extension; unknown extensions are
// treated as JSON.
func EncodingFromPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp", ".mpk":
		return EncodingMsgpack
	default:
		return EncodingJSON
	}
}

// ErrNoProgram is returned when a document has neither a Program root nor
// an envelope with a "program" field.
var ErrNoProgram = errors.New("document has no Program node")

// Document is one loaded tree together with the file it points at.
type Document struct {
	Path string
	File source.FileID
	Tree *ast.Tree
}

// Load reads a tree document from disk and registers its source (when the
// envelope carries one, or a file exists at the envelope path) in fs.
func Load(fs *source.FileSet, path string, enc Encoding) (*Document, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	if enc == EncodingAuto {
		enc = EncodingFromPath(path)
	}
	return Decode(fs, path, data, enc)
}

// Decode parses data and builds the tree. docPath names the document for
// error messages and is the fallback source path.
func Decode(fs *source.FileSet, docPath string, data []byte, enc Encoding) (*Document, error) {
	root, err := decodeRaw(data, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s (%s): %w", docPath, enc, err)
	}

	env := envelope{path: docPath, program: root}
	if root.typ() == "" {
		env = parseEnvelope(root, docPath)
	}
	if env.program == nil || env.program.typ() != "Program" {
		return nil, fmt.Errorf("%s: %w", docPath, ErrNoProgram)
	}

	content := env.source
	if content == nil && env.path != docPath {
		content = readSibling(docPath, env.path)
	}
	var file source.FileID
	if content != nil {
		file = fs.Add(env.path, content, source.FileVirtual)
	} else {
		file = fs.AddVirtual(env.path, nil)
	}

	l := newLoader(fs.Get(file), env.utf16)
	tree := l.program(env.program)
	if l.err != nil {
		return nil, fmt.Errorf("%s: %w", docPath, l.err)
	}
	return &Document{Path: env.path, File: file, Tree: tree}, nil
}

func decodeRaw(data []byte, enc Encoding) (node, error) {
	var raw any
	switch enc {
	case EncodingMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetMapDecoder(func(d *msgpack.Decoder) (any, error) {
			return d.DecodeUntypedMap()
		})
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		raw = stringKeys(raw)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	}
	n := asNode(raw)
	if n == nil {
		return nil, fmt.Errorf("top level is %T, want an object", raw)
	}
	return n, nil
}

// stringKeys rewrites msgpack's map[any]any into map[string]any so both
// encodings share one node representation.
func stringKeys(v any) any {
	switch x := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range x {
			x[k] = stringKeys(val)
		}
		return x
	case []any:
		for i := range x {
			x[i] = stringKeys(x[i])
		}
		return x
	}
	return v
}

type envelope struct {
	path    string
	source  []byte
	utf16   bool
	program node
}

func parseEnvelope(root node, docPath string) envelope {
	env := envelope{path: docPath, program: root.child("program")}
	if p := root.str("path"); p != "" {
		env.path = p
	}
	if s, ok := root["source"].(string); ok {
		env.source = []byte(s)
	}
	env.utf16 = strings.EqualFold(root.str("offsets"), "utf16")
	return env
}

// readSibling resolves srcPath relative to the document directory; a
// missing file just means no source preview.
func readSibling(docPath, srcPath string) []byte {
	if !filepath.IsAbs(srcPath) {
		srcPath = filepath.Join(filepath.Dir(docPath), srcPath)
	}
	// #nosec G304 -- path comes from the tree document
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil
	}
	return data
}
