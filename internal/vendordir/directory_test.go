package vendordir

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAliases() map[string][]string {
	return map[string][]string{
		"Anthropic (Claude)":  {"Claude", "claud"},
		"Discord / Mitch Ray": {"Discord Mitch Ray", "mitchray TA"},
		"Replit":              {"Replit", "replit"},
	}
}

func newTestDirectory(t *testing.T, aliases map[string][]string) *Directory {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "vendors.yaml"))
	dir, err := New(aliases, store)
	require.NoError(t, err)
	return dir
}

func TestResolve(t *testing.T) {
	dir := newTestDirectory(t, testAliases())
	require.NoError(t, dir.RegisterCreated("Anthropic (Claude)", 42, "Anthropic (Claude)"))

	testCases := []struct {
		name        string
		rawName     string
		expectedID  int64
		expectedErr error
	}{
		{
			name:       "Alias resolves to stored ID",
			rawName:    "Claude",
			expectedID: 42,
		},
		{
			name:       "Alias matching is case insensitive",
			rawName:    "CLAUD",
			expectedID: 42,
		},
		{
			name:        "Unknown raw name",
			rawName:     "Some New Vendor",
			expectedErr: ErrVendorNotMapped,
		},
		{
			name:        "Mapped but not created remotely",
			rawName:     "mitchray TA",
			expectedErr: ErrVendorNotCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := dir.Resolve(tc.rawName)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestRecord(t *testing.T) {
	dir := newTestDirectory(t, testAliases())
	require.NoError(t, dir.RegisterCreated("Replit", 7, "Replit"))

	rec, ok := dir.Record("Replit")
	require.True(t, ok)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "Replit", rec.Name)

	_, ok = dir.Record("Anthropic (Claude)")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	dir := newTestDirectory(t, testAliases())
	assert.Equal(t, "Discord / Mitch Ray", dir.DisplayName("mitchray TA"))
	assert.Equal(t, "Unknown Vendor", dir.DisplayName("Unknown Vendor"))
}

func TestNewRejectsDuplicateAliases(t *testing.T) {
	aliases := map[string][]string{
		"Vendor A": {"shared alias"},
		"Vendor B": {"Shared Alias"},
	}
	store := NewStore(filepath.Join(t.TempDir(), "vendors.yaml"))
	_, err := New(aliases, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shared alias")
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "vendors.yaml")
	store := NewStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	vendors := map[string]Record{
		"Anthropic (Claude)": {ID: 42, Name: "Anthropic (Claude)"},
		"Replit":             {ID: 7, Name: "Replit"},
	}
	require.NoError(t, store.Save(vendors))

	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, vendors, loaded)
}

func TestReconcileWithRemote(t *testing.T) {
	dir := newTestDirectory(t, testAliases())
	remote := []RemoteVendor{
		{ID: 42, Name: "anthropic (claude)"},
		{ID: 9, Name: "Unrelated Vendor"},
	}

	adopted, err := dir.ReconcileWithRemote(remote)
	require.NoError(t, err)
	assert.Equal(t, 1, adopted)

	id, err := dir.Resolve("Claude")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	// Second run is a no-op.
	adopted, err = dir.ReconcileWithRemote(remote)
	require.NoError(t, err)
	assert.Equal(t, 0, adopted)
}

func TestBulkEnsureAllCanonical(t *testing.T) {
	dir := newTestDirectory(t, testAliases())
	require.NoError(t, dir.RegisterCreated("Replit", 7, "Replit"))

	remote := []RemoteVendor{{ID: 42, Name: "Anthropic (Claude)"}}

	var created []string
	nextID := int64(100)
	create := func(name string) (RemoteVendor, error) {
		created = append(created, name)
		nextID++
		return RemoteVendor{ID: nextID, Name: name}, nil
	}

	summary, err := dir.BulkEnsureAllCanonical(remote, create, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, []string{"Discord / Mitch Ray"}, created)

	// Canonical names are processed in lexicographic order.
	var names []string
	for _, a := range summary.Actions {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Anthropic (Claude)", "Discord / Mitch Ray", "Replit"}, names)

	// Second run creates nothing.
	created = nil
	summary, err = dir.BulkEnsureAllCanonical(remote, create, false)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Empty(t, created)
}

func TestBulkEnsureCorrectsStaleLocalID(t *testing.T) {
	dir := newTestDirectory(t, testAliases())
	require.NoError(t, dir.RegisterCreated("Replit", 7, "Replit"))

	// The server disagrees with the stale local record; the remote ID
	// wins, same as a reconcile.
	remote := []RemoteVendor{{ID: 70, Name: "Replit"}}
	create := func(name string) (RemoteVendor, error) {
		return RemoteVendor{}, fmt.Errorf("unexpected create of %q", name)
	}

	summary, err := dir.BulkEnsureAllCanonical(remote, create, true)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)

	rec, ok := dir.Record("Replit")
	require.True(t, ok)
	assert.Equal(t, int64(70), rec.ID)
}

func TestBulkEnsureDryRun(t *testing.T) {
	dir := newTestDirectory(t, testAliases())

	create := func(name string) (RemoteVendor, error) {
		t.Fatalf("create called during dry run for %q", name)
		return RemoteVendor{}, nil
	}

	summary, err := dir.BulkEnsureAllCanonical(nil, create, true)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	require.Len(t, summary.Actions, 3)
	for _, a := range summary.Actions {
		assert.Equal(t, EnsureWouldCreate, a.Action)
	}
}

func TestBulkEnsureStopsOnCreateFailure(t *testing.T) {
	dir := newTestDirectory(t, testAliases())

	create := func(name string) (RemoteVendor, error) {
		return RemoteVendor{}, fmt.Errorf("server said no")
	}

	summary, err := dir.BulkEnsureAllCanonical(nil, create, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Anthropic (Claude)")
	assert.Contains(t, err.Error(), "server said no")
	assert.Equal(t, 0, summary.Created)
}
