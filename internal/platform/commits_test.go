package platform

import "testing"

func TestFormatChangeReason(t *testing.T) {
	tests := []struct {
		name, ctype, scope, subject, body, want string
	}{
		{"Full", CommitTypeFeat, "contacts", "add alice", "", "feat(contacts): add alice"},
		{"No Scope", CommitTypeFix, "", "edit phone", "", "fix: edit phone"},
		{"Default Type", "", "book", "sort", "", "chore(book): sort"},
		{"With Body", CommitTypeFeat, "notes", "add gift ideas", "  for alice\n", "feat(notes): add gift ideas\n\nfor alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatChangeReason(tt.ctype, tt.scope, tt.subject, tt.body); got != tt.want {
				t.Errorf("FormatChangeReason() = %q, want %q", got, tt.want)
			}
		})
	}
}
