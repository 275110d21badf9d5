package style_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/graphcache/internal/ui/style"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name       string
		unresolved int
		err        error
		wantIcon   string
		wantColor  lipgloss.Color
	}{
		{name: "resolved", wantIcon: style.IconResolved, wantColor: style.Success},
		{name: "unresolved", unresolved: 2, wantIcon: style.IconUnresolved, wantColor: style.Failure},
		{name: "failed", err: errors.New("boom"), wantIcon: style.IconUnresolved, wantColor: style.Failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, color := style.Outcome(tt.unresolved, tt.err)
			assert.Equal(t, tt.wantIcon, icon)
			assert.Equal(t, tt.wantColor, color)
		})
	}
}
