package report

import (
	"strings"
	"testing"
)

func TestPopulate(t *testing.T) {
	t.Run("substitutes all placeholders", func(t *testing.T) {
		shell := "<h1>{{STUDENT_NAME}}</h1><div>{{OVERVIEW}}</div>"
		out, err := Populate(shell, map[string]string{
			PlaceholderStudentName: "Maria Souza",
			PlaceholderOverview:    "<p>Boa semana.</p>",
		})
		if err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		if out != "<h1>Maria Souza</h1><div><p>Boa semana.</p></div>" {
			t.Errorf("Populate() = %q", out)
		}
	})

	t.Run("unresolved placeholder is an error", func(t *testing.T) {
		shell := "<h1>{{STUDENT_NAME}}</h1><div>{{UNKNOWN_TOKEN}}</div>"
		_, err := Populate(shell, map[string]string{
			PlaceholderStudentName: "Maria Souza",
		})
		if err == nil {
			t.Fatal("expected error for unresolved placeholder")
		}
		if !strings.Contains(err.Error(), "{{UNKNOWN_TOKEN}}") {
			t.Errorf("error %q does not name the leftover token", err)
		}
	})

	t.Run("empty value is a valid substitution", func(t *testing.T) {
		out, err := Populate(`<img src="{{LOGO_URL}}">`, map[string]string{
			PlaceholderLogoURL: "",
		})
		if err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		if out != `<img src="">` {
			t.Errorf("Populate() = %q", out)
		}
	})

	t.Run("repeated placeholder replaced everywhere", func(t *testing.T) {
		out, err := Populate("{{STUDENT_NAME}} / {{STUDENT_NAME}}", map[string]string{
			PlaceholderStudentName: "Ana",
		})
		if err != nil {
			t.Fatalf("Populate() error = %v", err)
		}
		if out != "Ana / Ana" {
			t.Errorf("Populate() = %q", out)
		}
	})
}
