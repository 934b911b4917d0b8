package persist

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteNames writes the `.names` artifact: name_count(u32), char_count(u32),
// name_count+1 prefix-sum offsets (the extra entry is the sentinel so every
// name's length is offsets[i+1]-offsets[i] with no special-case for the
// last one), then the concatenated characters.
func WriteNames(w io.Writer, names []string) error {
	offsets := make([]uint32, len(names)+1)
	var charCount uint32
	for i, n := range names {
		offsets[i] = charCount
		charCount += uint32(len(n))
	}
	offsets[len(names)] = charCount

	if err := binary.Write(w, binary.LittleEndian, uint32(len(names))); err != nil {
		return fmt.Errorf("persist: write names name_count: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, charCount); err != nil {
		return fmt.Errorf("persist: write names char_count: %w", err)
	}
	for _, off := range offsets {
		if err := binary.Write(w, binary.LittleEndian, off); err != nil {
			return fmt.Errorf("persist: write names offset: %w", err)
		}
	}
	for _, n := range names {
		if _, err := io.WriteString(w, n); err != nil {
			return fmt.Errorf("persist: write names characters: %w", err)
		}
	}
	return nil
}

// ReadNames reads back a `.names` artifact written by WriteNames.
func ReadNames(r io.Reader) ([]string, error) {
	var nameCount, charCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nameCount); err != nil {
		return nil, fmt.Errorf("persist: read names name_count: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &charCount); err != nil {
		return nil, fmt.Errorf("persist: read names char_count: %w", err)
	}

	offsets := make([]uint32, nameCount+1)
	for i := range offsets {
		if err := binary.Read(r, binary.LittleEndian, &offsets[i]); err != nil {
			return nil, fmt.Errorf("persist: read names offset: %w", err)
		}
	}

	chars := make([]byte, charCount)
	if _, err := io.ReadFull(r, chars); err != nil {
		return nil, fmt.Errorf("persist: read names characters: %w", err)
	}

	names := make([]string, nameCount)
	for i := uint32(0); i < nameCount; i++ {
		names[i] = string(chars[offsets[i]:offsets[i+1]])
	}
	return names, nil
}
