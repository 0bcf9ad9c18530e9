package fs

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/aretw0/keeper/pkg/core"
)

func TestYAMLSerializer_Strict(t *testing.T) {
	input := "version: 1\nrecords:\n  - name: Alice\n    nickname: Al\n"

	if _, err := NewYAMLSerializer(false).Decode(strings.NewReader(input)); err != nil {
		t.Fatalf("lenient decode failed: %v", err)
	}
	if _, err := NewYAMLSerializer(true).Decode(strings.NewReader(input)); err == nil {
		t.Error("strict decode must reject unknown fields")
	}
}

func TestJSONSerializer_EmptyInput(t *testing.T) {
	snap, err := NewJSONSerializer(false).Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty input must decode: %v", err)
	}
	if len(snap.Records) != 0 {
		t.Errorf("expected no records, got %d", len(snap.Records))
	}
}

func TestCSVSerializer_Decode(t *testing.T) {
	input := strings.Join([]string{
		"Name,Phones,Owner,Notes",
		`Alice,"[""1234567890""]",true,"[{""title"":""Hi"",""tags"":[""a""]}]"`,
		"Bob,,,",
	}, "\n")

	snap, err := NewCSVSerializer(false).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(snap.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(snap.Records))
	}

	alice := snap.Records[0]
	if !alice.Owner || len(alice.Phones) != 1 || alice.Phones[0] != "1234567890" {
		t.Errorf("unexpected Alice: %+v", alice)
	}
	if len(alice.Notes) != 1 || alice.Notes[0].Title != "Hi" {
		t.Errorf("unexpected notes: %+v", alice.Notes)
	}

	if _, err := NewCSVSerializer(false).Decode(strings.NewReader("phone\n123\n")); err == nil {
		t.Error("expected error for missing name column")
	}
	if _, err := NewCSVSerializer(true).Decode(strings.NewReader(input)); err == nil {
		t.Error("strict mode must require the full header")
	}
	if _, err := NewCSVSerializer(false).Decode(strings.NewReader("name,owner\nAlice,maybe\n")); err == nil {
		t.Error("expected error for invalid owner flag")
	}
}

func TestSnapshot_ApplyRejectsInvalidRecords(t *testing.T) {
	d := core.NewDirectory()
	snap := Snapshot{Records: []RecordDTO{
		{Name: "Alice", Phones: []string{"1234567890"}},
		{Name: "Bob", Phones: []string{"12"}},
	}}

	n, err := snap.Apply(d)
	if err == nil {
		t.Fatal("expected invalid phone to fail")
	}
	if n != 0 || d.Len() != 0 {
		t.Errorf("expected nothing applied, got n=%d len=%d", n, d.Len())
	}

	_, err = Snapshot{Records: []RecordDTO{{Name: " "}}}.Apply(d)
	if err == nil {
		t.Error("expected blank name to fail")
	}
}

func TestSnapshot_ApplyUsesDirectoryClock(t *testing.T) {
	// A date one year ahead of the wall clock is already past for the mock.
	birthday := time.Now().AddDate(1, 0, 0).Format(core.BirthdayLayout)
	snap := Snapshot{Records: []RecordDTO{{Name: "Alice", Birthday: birthday}}}

	if _, err := snap.Apply(core.NewDirectory()); err == nil {
		t.Error("expected a future birthday to fail with the wall clock")
	}

	mock := clock.NewMock()
	mock.Set(time.Now().AddDate(2, 0, 0))
	d := core.NewDirectory(core.WithClock(mock))
	if _, err := snap.Apply(d); err != nil {
		t.Fatalf("Apply failed under the directory clock: %v", err)
	}
	if r := d.FindByName("Alice"); r == nil || r.Birthday.String() != birthday {
		t.Errorf("birthday not applied: %+v", r)
	}
}

func TestDebouncer_Coalesces(t *testing.T) {
	deb := newDebouncer(20 * time.Millisecond)
	var fired atomic.Int32
	var last atomic.Value

	for _, typ := range []core.EventType{core.EventCreate, core.EventModify, core.EventModify} {
		deb.add(core.Event{Type: typ, ID: "contacts.yaml"}, func(e core.Event) {
			fired.Add(1)
			last.Store(e.Type)
		})
	}

	time.Sleep(100 * time.Millisecond)
	deb.stopAndWait()

	if fired.Load() != 1 {
		t.Errorf("expected 1 delivery, got %d", fired.Load())
	}
	if last.Load() != core.EventModify {
		t.Errorf("expected last event to win, got %v", last.Load())
	}
}
