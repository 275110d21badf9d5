// Package report renders the outcome of resolving a document as a short,
// human-readable summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/ui/style"
)

// FirstLevel is one direct dependency of the root as shown in the report.
type FirstLevel struct {
	Request   domain.DependencyRequest
	Component domain.ModuleVersionID
}

// Summary is everything the report shows for one resolution document.
type Summary struct {
	Document      string
	Configuration string
	Root          domain.ModuleVersionID
	FirstLevel    []FirstLevel
	Dependencies  int
	Artifacts     []domain.Artifact
	Unresolved    []domain.UnresolvedDependency
}

// Renderer writes summaries to a writer.
type Renderer struct {
	w       io.Writer
	base    lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	failed  lipgloss.Style
}

// NewRenderer creates a Renderer for w using the given color profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Renderer{
		w:       w,
		base:    r.NewStyle(),
		heading: r.NewStyle().Bold(true).Foreground(style.Heading),
		muted:   r.NewStyle().Foreground(style.Muted),
		failed:  r.NewStyle().Foreground(style.Failure),
	}
}

// Render writes s.
func (r *Renderer) Render(s Summary) error {
	var b strings.Builder

	icon, color := style.Outcome(len(s.Unresolved), nil)
	status := r.base.Foreground(color).Render(icon)
	fmt.Fprintf(&b, "%s %s %s\n", status, r.heading.Render(s.Configuration), r.muted.Render("("+s.Document+")"))
	fmt.Fprintf(&b, "  root          %s\n", s.Root)
	fmt.Fprintf(&b, "  dependencies  %d\n", s.Dependencies)

	if len(s.FirstLevel) > 0 {
		b.WriteString("  first level\n")
		for _, fl := range s.FirstLevel {
			fmt.Fprintf(&b, "    %s %s", style.IconSelected, fl.Component)
			if fl.Request.Selector != (domain.ComponentSelector{}) {
				note := fl.Request.Selector.String()
				if fl.Request.Reason != "" {
					note += ", " + fl.Request.Reason
				}
				b.WriteString(" " + r.muted.Render("("+note+")"))
			}
			b.WriteString("\n")
		}
	}

	if len(s.Artifacts) > 0 {
		b.WriteString("  artifacts\n")
		for _, a := range s.Artifacts {
			fmt.Fprintf(&b, "    %s %s\n", style.IconArtifact, artifactName(a))
		}
	}

	if len(s.Unresolved) > 0 {
		b.WriteString("  unresolved\n")
		for _, u := range s.Unresolved {
			fmt.Fprintf(&b, "    %s %s\n", r.failed.Render(style.IconUnresolved), u.Selector)
			if u.Problem != nil {
				fmt.Fprintf(&b, "      %s\n", u.Problem.Error())
			}
			for _, p := range u.Paths {
				fmt.Fprintf(&b, "      %s\n", r.muted.Render("required by "+p.String()))
			}
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func artifactName(a domain.Artifact) string {
	if a.Path != "" {
		return a.Path
	}
	name := a.Name
	if a.Classifier != "" {
		name += "-" + a.Classifier
	}
	if a.Extension != "" {
		name += "." + a.Extension
	}
	return name
}
