package core_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/keeper/pkg/core"
)

// today is fixed so birthday windows are deterministic.
var today = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func newDirectory(t *testing.T) (*core.Directory, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(today)
	return core.NewDirectory(core.WithClock(mock)), mock
}

func newRecord(t *testing.T, name string, phones ...string) *core.Record {
	t.Helper()
	r := core.NewRecord(name)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func withBirthdayIn(r *core.Record, days int) *core.Record {
	d := today.AddDate(0, 0, days)
	b := core.NewBirthday(1990, d.Month(), d.Day())
	r.Birthday = &b
	return r
}

func names(records []*core.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name()
	}
	return out
}

func TestDirectory_Add(t *testing.T) {
	t.Run("Rejects Empty Name", func(t *testing.T) {
		d, _ := newDirectory(t)
		require.NoError(t, d.Add(newRecord(t, "Alice")))

		err := d.Add(core.NewRecord("   "))
		require.ErrorIs(t, err, core.ErrInvalidRecord)
		assert.Equal(t, []string{"Alice"}, d.Names())
	})

	t.Run("Rejects Nil Record", func(t *testing.T) {
		d, _ := newDirectory(t)
		require.ErrorIs(t, d.Add(nil), core.ErrInvalidRecord)
		assert.Equal(t, 0, d.Len())
	})

	t.Run("Overwrites Same Name", func(t *testing.T) {
		d, _ := newDirectory(t)
		first := newRecord(t, "Alice", "1234567890")
		second := newRecord(t, "Alice", "0987654321")

		require.NoError(t, d.Add(first))
		require.NoError(t, d.Add(newRecord(t, "Bob")))
		require.NoError(t, d.Add(second))

		assert.Equal(t, 2, d.Len())
		assert.Same(t, second, d.FindByName("Alice"))
		assert.Equal(t, []string{"Alice", "Bob"}, d.Names(), "overwrite keeps position")
	})

	t.Run("Owner Flag Moves", func(t *testing.T) {
		d, _ := newDirectory(t)
		alice := newRecord(t, "Alice")
		alice.Owner = true
		bob := newRecord(t, "Bob")
		bob.Owner = true

		require.NoError(t, d.Add(alice))
		require.NoError(t, d.Add(bob))

		assert.False(t, alice.Owner)
		assert.Same(t, bob, d.Owner())
	})
}

func TestDirectory_Owner(t *testing.T) {
	d, _ := newDirectory(t)
	assert.Nil(t, d.Owner())

	require.NoError(t, d.Add(newRecord(t, "Alice")))
	require.NoError(t, d.Add(newRecord(t, "Bob")))
	assert.Nil(t, d.Owner())

	require.NoError(t, d.SetOwner("Alice"))
	assert.Equal(t, "Alice", d.Owner().Name())

	require.NoError(t, d.SetOwner("Bob"))
	assert.Equal(t, "Bob", d.Owner().Name())
	assert.False(t, d.FindByName("Alice").Owner)

	assert.ErrorIs(t, d.SetOwner("Carol"), core.ErrNotFound)
}

func TestDirectory_FindByPhone(t *testing.T) {
	d, _ := newDirectory(t)
	require.NoError(t, d.Add(newRecord(t, "Alice", "1234567890")))
	require.NoError(t, d.Add(newRecord(t, "Bob", "5555555555", "1234567890")))

	assert.Equal(t, "Alice", d.FindByPhone("1234567890").Name(), "first match only")
	assert.Equal(t, "Bob", d.FindByPhone("5555555555").Name())
	assert.Nil(t, d.FindByPhone("12345"), "exact match only")

	assert.Equal(t, []string{"Alice", "Bob"}, names(d.FindAllByPhone("1234567890")))
	assert.Empty(t, d.FindAllByPhone("0000000000"))
}

func TestDirectory_Delete(t *testing.T) {
	d, _ := newDirectory(t)
	require.NoError(t, d.Add(newRecord(t, "Alice")))
	require.NoError(t, d.Add(newRecord(t, "Bob")))

	require.NoError(t, d.Delete("Alice"))
	assert.Nil(t, d.FindByName("Alice"))
	assert.Equal(t, []string{"Bob"}, d.Names())

	err := d.Delete("Alice")
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, []string{"Bob"}, d.Names())
}

func TestDirectory_UpcomingBirthdays(t *testing.T) {
	t.Run("Alice And Bob", func(t *testing.T) {
		d, _ := newDirectory(t)
		require.NoError(t, d.Add(withBirthdayIn(newRecord(t, "Alice", "1230000000"), 5)))
		require.NoError(t, d.Add(withBirthdayIn(newRecord(t, "Bob", "4560000000"), 10)))

		assert.Equal(t, []string{"Alice"}, names(d.UpcomingBirthdays(5)))
		assert.ElementsMatch(t, []string{"Alice", "Bob"}, names(d.UpcomingBirthdays(10)))
	})

	t.Run("Boundaries", func(t *testing.T) {
		d, _ := newDirectory(t)
		require.NoError(t, d.Add(withBirthdayIn(newRecord(t, "Today"), 0)))
		require.NoError(t, d.Add(withBirthdayIn(newRecord(t, "Edge"), 7)))
		require.NoError(t, d.Add(withBirthdayIn(newRecord(t, "Past"), -1)))
		require.NoError(t, d.Add(newRecord(t, "NoBirthday")))

		assert.Equal(t, []string{"Today"}, names(d.UpcomingBirthdays(0)))
		assert.Equal(t, []string{"Today"}, names(d.UpcomingBirthdays(6)))
		assert.Equal(t, []string{"Today", "Edge"}, names(d.UpcomingBirthdays(7)))
		assert.Empty(t, d.UpcomingBirthdays(-1))
	})

	t.Run("Wraps Into Next Year", func(t *testing.T) {
		d, mock := newDirectory(t)
		mock.Set(time.Date(2024, time.December, 30, 9, 0, 0, 0, time.UTC))
		b := core.NewBirthday(1985, time.January, 2)
		r := newRecord(t, "NewYear")
		r.Birthday = &b
		require.NoError(t, d.Add(r))

		assert.Empty(t, d.UpcomingBirthdays(2))
		assert.Equal(t, []string{"NewYear"}, names(d.UpcomingBirthdays(3)))
	})

	t.Run("Monotonic", func(t *testing.T) {
		d, _ := newDirectory(t)
		for i, days := range []int{0, 3, 15, 40, 200, 364} {
			r := withBirthdayIn(newRecord(t, string(rune('A'+i))), days)
			require.NoError(t, d.Add(r))
		}
		for n := 0; n < 366; n++ {
			smaller := names(d.UpcomingBirthdays(n))
			larger := names(d.UpcomingBirthdays(n + 1))
			assert.Subset(t, larger, smaller, "window %d", n)
		}
	})
}

func TestDirectory_FindByField(t *testing.T) {
	d, _ := newDirectory(t)

	alice := newRecord(t, "Alice", "1234567890")
	alice.Email = "alice@example.com"
	work, err := core.NewNote("Meeting", "Quarterly review", "Work", "urgent", "workshop")
	require.NoError(t, err)
	require.NoError(t, alice.AddNote(work))

	bob := newRecord(t, "Bob", "5551234000")
	bob.Address = "Baker Street 221b"
	b := core.NewBirthday(1980, time.July, 4)
	bob.Birthday = &b
	groceries, err := core.NewNote("Groceries", "milk, eggs", "home")
	require.NoError(t, err)
	require.NoError(t, bob.AddNote(groceries))

	require.NoError(t, d.Add(alice))
	require.NoError(t, d.Add(bob))

	tests := []struct {
		field string
		value string
		want  []string
	}{
		{"phone", "1234567890", []string{"Alice"}},
		{"phones", "1234", []string{"Alice", "Bob"}},
		{"note", "REVIEW", []string{"Alice"}},
		{"note", "Groceries: milk, eggs [home]", []string{"Bob"}},
		{"tag", "work", []string{"Alice"}},
		{"tag", "OM", []string{"Bob"}},
		{"name", "ali", []string{"Alice"}},
		{"email", "EXAMPLE.com", []string{"Alice"}},
		{"address", "baker", []string{"Bob"}},
		{"birthday", "07-04", []string{"Bob"}},
		{"all", "baker", []string{"Bob"}},
		{"all", "quarterly", []string{"Alice"}},
		{"all", "zzz", nil},
		{"nickname", "Alice", nil},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			got := d.FindByField(tt.field, tt.value)
			assert.ElementsMatch(t, tt.want, names(got))
		})
	}

	t.Run("Distinct Results", func(t *testing.T) {
		// "work" matches both "Work" and "workshop" on the same note.
		got := d.FindByField("tag", "work")
		assert.Len(t, got, 1)
	})

	t.Run("Custom Matcher", func(t *testing.T) {
		d.RegisterMatcher("initial", func(r *core.Record, value string) bool {
			return r.Name()[:1] == value
		})
		assert.Equal(t, []string{"Bob"}, names(d.FindByField("initial", "B")))
	})
}

func TestDirectory_Sort(t *testing.T) {
	d, _ := newDirectory(t)
	for _, n := range []string{"Carol", "alice", "Bob", "Alice"} {
		require.NoError(t, d.Add(newRecord(t, n)))
	}

	d.Sort()
	once := d.Names()
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "alice"}, once)

	d.Sort()
	assert.Equal(t, once, d.Names())
}

func TestDirectory_Notes(t *testing.T) {
	d, _ := newDirectory(t)
	alice := newRecord(t, "Alice")
	bob := newRecord(t, "Bob")

	mustNote := func(title string, tags ...string) *core.Note {
		n, err := core.NewNote(title, "body", tags...)
		require.NoError(t, err)
		return n
	}

	require.NoError(t, alice.AddNote(mustNote("Shared", "x")))
	require.NoError(t, alice.AddNote(mustNote("Todo", "work")))
	require.NoError(t, bob.AddNote(mustNote("Shared", "work")))
	require.NoError(t, bob.AddNote(mustNote("Ideas", "Work")))
	require.NoError(t, d.Add(alice))
	require.NoError(t, d.Add(bob))

	t.Run("FindNoteByTitle", func(t *testing.T) {
		n := d.FindNoteByTitle("Shared")
		require.NotNil(t, n)
		assert.Same(t, alice.Notes[0], n)
		assert.Nil(t, d.FindNoteByTitle("shared"))
	})

	t.Run("FindNotesByTag Is Exact", func(t *testing.T) {
		got := d.FindNotesByTag("work")
		require.Len(t, got, 2)
		assert.Equal(t, "Todo", got[0].Title)
		assert.Equal(t, "Shared", got[1].Title)
	})

	t.Run("DeleteNoteByTitle Removes First Only", func(t *testing.T) {
		assert.True(t, d.DeleteNoteByTitle("Shared"))
		assert.Len(t, alice.Notes, 1)
		assert.Len(t, bob.Notes, 2)

		assert.True(t, d.DeleteNoteByTitle("Shared"))
		assert.Len(t, bob.Notes, 1)

		assert.False(t, d.DeleteNoteByTitle("Shared"))
		assert.Len(t, alice.Notes, 1)
		assert.Len(t, bob.Notes, 1)
	})
}

func TestDirectory_RenameRecord(t *testing.T) {
	t.Run("Renames Key And Record", func(t *testing.T) {
		d, _ := newDirectory(t)
		alice := newRecord(t, "Alice", "1234567890")
		require.NoError(t, d.Add(alice))

		msg, err := d.RenameRecord("Alice", "Alicia")
		require.NoError(t, err)
		assert.Equal(t, "Name changed from Alice to Alicia.", msg)

		assert.Nil(t, d.FindByName("Alice"))
		got := d.FindByName("Alicia")
		require.NotNil(t, got)
		assert.Same(t, alice, got)
		assert.Equal(t, "Alicia", got.Name())
	})

	t.Run("Missing Record", func(t *testing.T) {
		d, _ := newDirectory(t)
		_, err := d.RenameRecord("Ghost", "Casper")
		require.ErrorIs(t, err, core.ErrNotFound)
		assert.Nil(t, d.FindByName("Casper"))
		assert.Equal(t, 0, d.Len())
	})

	t.Run("Failures Leave State Unchanged", func(t *testing.T) {
		d, _ := newDirectory(t)
		require.NoError(t, d.Add(newRecord(t, "Alice")))
		require.NoError(t, d.Add(newRecord(t, "Bob")))

		_, err := d.RenameRecord("Alice", "  ")
		require.ErrorIs(t, err, core.ErrInvalidRecord)

		_, err = d.RenameRecord("Alice", "Bob")
		require.ErrorIs(t, err, core.ErrNameTaken)

		assert.Equal(t, []string{"Alice", "Bob"}, d.Names())
		assert.Equal(t, "Alice", d.FindByName("Alice").Name())
	})
}

func TestDirectory_State(t *testing.T) {
	d, _ := newDirectory(t)
	r := newRecord(t, "Alice")
	r.Owner = true
	n, err := core.NewNote("Hello", "")
	require.NoError(t, err)
	require.NoError(t, r.AddNote(n))
	require.NoError(t, d.Add(r))

	state, ok := d.State().(core.DirectoryState)
	require.True(t, ok)
	assert.Equal(t, core.DirectoryState{Records: 1, Notes: 1, Owner: "Alice"}, state)
	assert.Equal(t, "directory", d.ComponentType())
}
