package blog

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Café com Leite", "cafe-com-leite"},
		{"Configuração Avançada", "configuracao-avancada"},
		{"My Note! (Draft)", "my-note-draft"},
		{"2024-01-01 Daily", "2024-01-01-daily"},
		{"  spaced   out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"under_score kept", "under_score-kept"},
		{"a --- b", "a-b"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	in := "Análise de Sistemas: parte 2"
	if Slugify(in) != Slugify(in) {
		t.Errorf("Slugify(%q) not stable across calls", in)
	}
}

func TestSluggerDeduplicates(t *testing.T) {
	s := NewSlugger()

	want := []string{"setup", "setup-1", "setup-2"}
	for i, w := range want {
		if got := s.Slug("Setup"); got != w {
			t.Errorf("occurrence %d: got %q, want %q", i, got, w)
		}
	}
}

func TestSluggerIndependentBases(t *testing.T) {
	s := NewSlugger()

	if got := s.Slug("Intro"); got != "intro" {
		t.Errorf("got %q, want %q", got, "intro")
	}
	if got := s.Slug("Details"); got != "details" {
		t.Errorf("got %q, want %q", got, "details")
	}
	if got := s.Slug("Intro"); got != "intro-1" {
		t.Errorf("got %q, want %q", got, "intro-1")
	}
}
