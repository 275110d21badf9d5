package cas_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graphcache/internal/adapters/cas"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
)

func writeString(s string) func(ports.Encoder) error {
	return func(enc ports.Encoder) error { return enc.WriteString(s) }
}

func TestStore_WriteDoneRead(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "results")
	store, err := cas.NewStore(dir, true)
	require.NoError(t, err)

	require.NoError(t, store.Write(writeString("first")))
	require.NoError(t, store.Write(writeString("second")))

	handle, err := store.Done()
	require.NoError(t, err)
	blob, ok := handle.(*cas.Blob)
	require.True(t, ok)

	t.Run("named after content digest", func(t *testing.T) {
		data, err := os.ReadFile(blob.Path())
		require.NoError(t, err)
		assert.Equal(t, strconv.FormatUint(xxhash.Sum64(data), 16), blob.Digest())
		assert.True(t, strings.HasPrefix(filepath.Base(blob.Path()), blob.Digest()+"-"))
		assert.Equal(t, ".bin", filepath.Ext(blob.Path()))
	})

	t.Run("read back", func(t *testing.T) {
		var got []string
		require.NoError(t, handle.Read(func(dec ports.Decoder) error {
			for range 2 {
				s, err := dec.ReadString()
				if err != nil {
					return err
				}
				got = append(got, s)
			}
			return nil
		}))
		assert.Equal(t, []string{"first", "second"}, got)
	})

	t.Run("no temp files left", func(t *testing.T) {
		matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestStore_WriteAfterDone(t *testing.T) {
	t.Parallel()

	store, err := cas.NewStore(t.TempDir(), false)
	require.NoError(t, err)
	_, err = store.Done()
	require.NoError(t, err)

	err = store.Write(writeString("late"))
	require.ErrorIs(t, err, domain.ErrStoreSealed)
}

func TestBlob_CloseDeletesUnlessKept(t *testing.T) {
	t.Parallel()

	for _, keep := range []bool{false, true} {
		store, err := cas.NewStore(t.TempDir(), keep)
		require.NoError(t, err)
		require.NoError(t, store.Write(writeString("x")))
		handle, err := store.Done()
		require.NoError(t, err)
		path := handle.(*cas.Blob).Path()

		require.NoError(t, handle.Close())
		require.NoError(t, handle.Close())

		_, statErr := os.Stat(path)
		if keep {
			assert.NoError(t, statErr)
		} else {
			assert.True(t, os.IsNotExist(statErr))
		}

		err = handle.Read(func(ports.Decoder) error { return nil })
		require.ErrorIs(t, err, domain.ErrBlobClosed)
	}
}

func TestStore_Abort(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := cas.NewStore(dir, false)
	require.NoError(t, err)
	require.NoError(t, store.Write(writeString("x")))
	require.NoError(t, store.Abort())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFactory_RelativeDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	f := cas.NewFactory(domain.Settings{StoreDir: "out/results"}, root)
	assert.Equal(t, filepath.Join(root, "out/results"), f.Dir)

	store, err := f.NewStore()
	require.NoError(t, err)
	_, err = store.Done()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "out/results"))
	require.NoError(t, err)
}
