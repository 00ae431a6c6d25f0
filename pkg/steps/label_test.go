package steps

import "testing"

func TestGenerateLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"camel case", "loadModules", "Load modules"},
		{"two words", "parseMarkdown", "Parse markdown"},
		{"many words", "initBoardStateGenerator", "Init board state generator"},
		{"single word", "build", "Build"},
		{"leading upper", "Build", "Build"},
		{"digit run", "convertMp3Files", "Convert mp 3 files"},
		{"trailing digits", "phase2", "Phase 2"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateLabel(tt.in); got != tt.want {
				t.Errorf("GenerateLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateLabel_StableOnOwnOutput(t *testing.T) {
	for _, in := range []string{"loadModules", "parseMarkdown", "initBoardStateGenerator"} {
		once := GenerateLabel(in)
		twice := GenerateLabel(once)
		if twice != once {
			t.Errorf("GenerateLabel(GenerateLabel(%q)) = %q, want %q", in, twice, once)
		}
	}
}
