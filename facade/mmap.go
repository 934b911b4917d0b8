package facade

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile is one read-only mmap'd artifact file. Close unmaps it; the
// caller must keep the mappedFile alive for as long as any reader built
// over its bytes is in use.
type mappedFile struct {
	data []byte
	file *os.File
}

func mapFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("facade: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("facade: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		// unix.Mmap rejects a zero-length mapping; an empty artifact (e.g.
		// an empty `.timestamp`) is not mapped and yields an empty reader.
		f.Close()
		return &mappedFile{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("facade: mmap %s: %w", path, err)
	}
	return &mappedFile{data: data, file: f}, nil
}

// Reader returns a fresh *bytes.Reader over the mapped bytes, so each
// persist decoder gets its own read cursor without re-reading the file.
func (m *mappedFile) Reader() *bytes.Reader { return bytes.NewReader(m.data) }

func (m *mappedFile) Close() error {
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
	}
	if m.file != nil {
		if cerr := m.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// MappedDataset is a Dataset backed by mmap'd artifact files. Close()
// releases the mappings; the Dataset itself remains a plain in-memory
// struct (persist's decoders copy the decoded values out of the mapped
// bytes), so the mappings only need to outlive the LoadDataset call.
type MappedDataset struct {
	*Dataset
	files []*mappedFile
}

// OpenFileFacade maps all seven dataset artifacts at paths read-only and
// decodes them into a Dataset. branchingFactor <= 0 uses
// rtree.DefaultBranchingFactor.
func OpenFileFacade(paths DatasetPaths, branchingFactor int, strict bool) (*MappedDataset, error) {
	var files []*mappedFile
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	open := func(path string) (*mappedFile, error) {
		f, err := mapFile(path)
		if err != nil {
			closeAll()
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	hsgr, err := open(paths.HSGR)
	if err != nil {
		return nil, err
	}
	nodes, err := open(paths.Nodes)
	if err != nil {
		return nil, err
	}
	edges, err := open(paths.Edges)
	if err != nil {
		return nil, err
	}
	names, err := open(paths.Names)
	if err != nil {
		return nil, err
	}
	ramIndex, err := open(paths.RAMIndex)
	if err != nil {
		return nil, err
	}
	fileIndex, err := open(paths.FileIndex)
	if err != nil {
		return nil, err
	}
	timestamp, err := open(paths.Timestamp)
	if err != nil {
		return nil, err
	}

	dataset, err := LoadDataset(Readers{
		HSGR:            hsgr.Reader(),
		Nodes:           nodes.Reader(),
		Edges:           edges.Reader(),
		Names:           names.Reader(),
		RAMIndex:        ramIndex.Reader(),
		FileIndex:       fileIndex.Reader(),
		Timestamp:       timestamp.Reader(),
		BranchingFactor: branchingFactor,
		Strict:          strict,
	})
	if err != nil {
		closeAll()
		return nil, err
	}

	return &MappedDataset{Dataset: dataset, files: files}, nil
}

// Close unmaps every artifact file. Single ownership: safe to call once;
// a second call double-unmaps and returns an error from the kernel.
func (m *MappedDataset) Close() error {
	var first error
	for _, f := range m.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// DatasetPaths mirrors config.DatasetPaths' field shape without importing
// package config, so facade has no dependency on the configuration layer's
// YAML/koanf surface — only the plain paths it actually needs.
type DatasetPaths struct {
	HSGR      string
	Nodes     string
	Edges     string
	Names     string
	RAMIndex  string
	FileIndex string
	Timestamp string
}
