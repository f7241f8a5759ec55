package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/parserpool"
	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	var _ catalog.NameNormalizer = pool

	tests := []struct {
		msg, name, canonical string
	}{
		{"binomial", "Homo sapiens", "Homo sapiens"},
		{"with author", "Mus musculus Linnaeus, 1758", "Mus musculus"},
		{"trinomial", "Bos taurus taurus", "Bos taurus taurus"},
		{"empty", "  ", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.canonical, pool.Canonical(v.name), v.msg)
	}
}

func TestCanonicalConcurrent(t *testing.T) {
	pool := parserpool.NewPool(0)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Homo sapiens", pool.Canonical("Homo sapiens"))
		}()
	}
	wg.Wait()
}
