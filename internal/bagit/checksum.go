package bagit

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// checksumChunkSize is the read buffer for streaming hashing.
const checksumChunkSize = 8192

// defaultHashParallelism bounds the checksum fan-out. Each file's
// checksum is independent, so payload hashing can run in parallel
// without changing manifest semantics.
const defaultHashParallelism = 4

// SHA512File computes the lowercase hex SHA-512 digest of a file,
// streamed in fixed-size chunks.
func SHA512File(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- payload path inside the bag
	if err != nil {
		return "", fmt.Errorf("cannot open file for checksum: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha512.New()
	buf := make([]byte, checksumChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("cannot checksum %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// checksumAll computes digests for all paths, bounded-parallel,
// returning results in input order.
func checksumAll(paths []string, parallel int) ([]string, error) {
	if parallel < 1 {
		parallel = 1
	}

	sums := make([]string, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(parallel)

	for i, path := range paths {
		g.Go(func() error {
			sum, err := SHA512File(path)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}
