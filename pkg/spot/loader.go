package spot

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// Load decodes a spot dataset from JSON. records with missing or invalid
// coordinates are kept: only geospatial stages exclude them.
func Load(data []byte) ([]*Spot, error) {
	var spots []*Spot
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

// LoadFile reads a spot dump from disk. dumps may be plain JSON or
// bzip2-compressed JSON (.bz2 suffix), the exchange format the sync layer
// produces.
func LoadFile(filename string) ([]*Spot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var spots []*Spot
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		if err := json.NewDecoder(bufio.NewReader(bz)).Decode(&spots); err != nil {
			return nil, err
		}
		return spots, nil
	}

	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&spots); err != nil {
		return nil, err
	}
	return spots, nil
}

// WriteFile writes a spot dump, bzip2-compressed when filename ends in .bz2.
func WriteFile(filename string, spots []*Spot) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return err
		}
		defer bz.Close()

		w := bufio.NewWriter(bz)
		if err := json.NewEncoder(w).Encode(spots); err != nil {
			return err
		}
		return w.Flush()
	}

	w := bufio.NewWriter(f)
	if err := json.NewEncoder(w).Encode(spots); err != nil {
		return err
	}
	return w.Flush()
}
