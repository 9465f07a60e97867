//go:build unit

package sessionstore

import (
	"context"
	"path/filepath"
	"testing"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/pkg/config"
	"parking-portal/tests/common/testutil"

	"github.com/stretchr/testify/suite"
)

// StoreContractSuite runs the same behaviour against every backend.
type StoreContractSuite struct {
	suite.Suite
	open func(t *testing.T) Store
	// setRaw writes one key bypassing Replace.
	setRaw func(store Store, key, value string)
	store  Store
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreContractSuite{
		open: func(*testing.T) Store { return NewMemoryStore() },
		setRaw: func(store Store, key, value string) {
			store.(*MemoryStore).Set(key, value)
		},
	})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreContractSuite{
		open: func(t *testing.T) Store {
			store, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"), testutil.DiscardLogger())
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			return store
		},
		setRaw: func(store Store, key, value string) {
			_, err := store.(*SQLiteStore).db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
			if err != nil {
				panic(err)
			}
		},
	})
}

func (s *StoreContractSuite) SetupTest() {
	s.store = s.open(s.T())
}

func (s *StoreContractSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreContractSuite) TestEmptyStore() {
	got, err := s.store.Current(context.Background())
	s.Require().NoError(err)
	s.False(got.IsAuthenticated())
}

func (s *StoreContractSuite) TestReplaceAndRead() {
	ctx := context.Background()
	want := session.New("tok", "Amina", "amina@example.com", user.RoleAdmin)

	s.Require().NoError(s.store.Replace(ctx, want))

	got, err := s.store.Current(ctx)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *StoreContractSuite) TestReplaceIsFullReplacement() {
	ctx := context.Background()
	s.Require().NoError(s.store.Replace(ctx, session.New("tok-a", "Admin", "admin@example.com", user.RoleAdmin)))
	s.Require().NoError(s.store.Replace(ctx, session.New("tok-b", "", "omar@example.com", user.RoleUser)))

	got, err := s.store.Current(ctx)
	s.Require().NoError(err)
	s.Equal("tok-b", got.Token())
	s.Empty(got.UserName())
	s.Equal(user.RoleUser, got.Role())
	s.False(got.IsAdmin())
}

func (s *StoreContractSuite) TestReplaceWithEmptySessionClears() {
	ctx := context.Background()
	s.Require().NoError(s.store.Replace(ctx, session.New("tok", "Amina", "amina@example.com", user.RoleUser)))

	s.Require().NoError(s.store.Replace(ctx, session.Session{}))

	got, err := s.store.Current(ctx)
	s.Require().NoError(err)
	s.Equal(session.Session{}, got)
}

func (s *StoreContractSuite) TestClear() {
	ctx := context.Background()
	s.Require().NoError(s.store.Replace(ctx, session.New("tok", "Amina", "amina@example.com", user.RoleAdmin)))

	s.Require().NoError(s.store.Clear(ctx))

	got, err := s.store.Current(ctx)
	s.Require().NoError(err)
	s.False(got.IsAuthenticated())
	s.False(got.IsAdmin())
}

func (s *StoreContractSuite) TestPartialRecordWithoutToken() {
	s.setRaw(s.store, session.KeyUserEmail, "amina@example.com")
	s.setRaw(s.store, session.KeyRole, "ADMIN")

	got, err := s.store.Current(context.Background())
	s.Require().NoError(err)
	s.False(got.IsAuthenticated())
	s.False(got.IsAdmin())
}

func (s *StoreContractSuite) TestUnknownRoleReadsAsUser() {
	s.setRaw(s.store, session.KeyToken, "tok")
	s.setRaw(s.store, session.KeyRole, "SUPERVISOR")

	got, err := s.store.Current(context.Background())
	s.Require().NoError(err)
	s.True(got.IsAuthenticated())
	s.Equal(user.RoleUser, got.Role())
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	first, err := OpenSQLite(path, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := session.New("tok", "Amina", "amina@example.com", user.RoleUser)
	if err := first.Replace(ctx, want); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(path, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	got, err := second.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got != want {
		t.Errorf("session after reopen = %+v, want %+v", got, want)
	}
}

func TestNew(t *testing.T) {
	logger := testutil.DiscardLogger()

	mem, err := New(config.SessionConfig{Backend: BackendMemory}, logger)
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := mem.(*MemoryStore); !ok {
		t.Errorf("memory backend returned %T", mem)
	}

	sqlite, err := New(config.SessionConfig{Backend: BackendSQLite, DBPath: ":memory:"}, logger)
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer sqlite.Close()
	if _, ok := sqlite.(*SQLiteStore); !ok {
		t.Errorf("sqlite backend returned %T", sqlite)
	}

	if _, err := New(config.SessionConfig{Backend: "redis"}, logger); err == nil {
		t.Error("unknown backend accepted")
	}
}
